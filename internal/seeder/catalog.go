package seeder

// Curated seed lists.  These are static configuration data; order matters for
// trending ranks, so the per-house table keeps an explicit house order next
// to the map.

// HouseCatalog lists the titles seeded for each production house.
var HouseCatalog = map[string][]string{
	"Marvel Studios": {
		"Avengers: Endgame", "Iron Man", "Black Panther", "Spider-Man: No Way Home",
		"Thor: Ragnarok", "Guardians of the Galaxy", "Captain America: Civil War",
		"Doctor Strange", "Avengers: Infinity War", "Black Widow",
	},
	"Warner Bros. Pictures": {
		"The Dark Knight", "Inception", "Interstellar", "The Matrix",
		"Harry Potter and the Sorcerer's Stone", "Joker", "Dunkirk",
		"Mad Max: Fury Road", "The Batman", "Dune",
	},
	"Universal Pictures": {
		"Jurassic Park", "Fast & Furious", "E.T.", "Jaws",
		"The Bourne Identity", "Minions", "Despicable Me", "Back to the Future",
		"Jurassic World", "The Fast and the Furious",
	},
	"Paramount Pictures": {
		"Titanic", "Forrest Gump", "Mission: Impossible", "Transformers",
		"Top Gun", "Indiana Jones", "Star Trek", "The Godfather",
		"Top Gun: Maverick", "A Quiet Place",
	},
	"20th Century Studios": {
		"Avatar", "Star Wars", "Alien", "Die Hard",
		"Planet of the Apes", "X-Men", "Deadpool", "The Martian",
		"Avatar: The Way of Water", "Bohemian Rhapsody",
	},
	"Columbia Pictures": {
		"Spider-Man", "Men in Black", "Ghostbusters", "The Social Network",
		"Zombieland", "The Amazing Spider-Man", "Bad Boys", "Jumanji",
		"Spider-Man: Into the Spider-Verse", "Venom",
	},
	"Walt Disney Pictures": {
		"The Lion King", "Frozen", "Moana", "Aladdin",
		"Beauty and the Beast", "Toy Story", "Finding Nemo", "The Incredibles",
		"Coco", "Encanto",
	},
	"DreamWorks Pictures": {
		"Shrek", "How to Train Your Dragon", "Kung Fu Panda", "Madagascar",
		"Megamind", "The Prince of Egypt", "Puss in Boots", "Trolls",
		"The Boss Baby", "Shrek 2",
	},
	"Studio Ghibli": {
		"Spirited Away", "My Neighbor Totoro", "Princess Mononoke", "Howl's Moving Castle",
		"Ponyo", "The Wind Rises", "Kiki's Delivery Service", "Castle in the Sky",
		"Grave of the Fireflies", "Nausicaä of the Valley of the Wind",
	},
	"Legendary Entertainment": {
		"The Dark Knight", "Inception", "Godzilla", "Pacific Rim",
		"Dune", "Kong: Skull Island", "Warcraft", "Detective Pikachu",
		"Godzilla vs. Kong", "Enola Holmes",
	},
}

// HouseOrder fixes the iteration order of SeedAll so runs are reproducible.
var HouseOrder = []string{
	"Marvel Studios",
	"Warner Bros. Pictures",
	"Universal Pictures",
	"Paramount Pictures",
	"20th Century Studios",
	"Columbia Pictures",
	"Walt Disney Pictures",
	"DreamWorks Pictures",
	"Studio Ghibli",
	"Legendary Entertainment",
}

// TrendingTitles get stepped view counts so later entries rank higher.
var TrendingTitles = []string{
	"Oppenheimer", "Barbie", "The Super Mario Bros. Movie",
	"Guardians of the Galaxy Vol. 3", "Spider-Man: Across the Spider-Verse",
	"John Wick: Chapter 4", "The Little Mermaid", "Fast X",
	"Ant-Man and the Wasp: Quantumania", "Scream VI",
}

// TopRatedTitles are inserted with a flat baseline view count.
var TopRatedTitles = []string{
	"The Shawshank Redemption", "The Godfather", "The Dark Knight",
	"Pulp Fiction", "Forrest Gump", "Inception", "Fight Club",
	"The Matrix", "Goodfellas", "The Lord of the Rings: The Return of the King",
}

// EssentialTitles is the reduced list used by the quick seed.
var EssentialTitles = []string{
	"Avengers: Endgame", "The Dark Knight", "Inception", "Interstellar",
	"Pulp Fiction", "The Shawshank Redemption", "Forrest Gump", "The Matrix",
	"Spirited Away", "Parasite", "Joker", "Spider-Man: No Way Home",
	"Dune", "Top Gun: Maverick", "Everything Everywhere All at Once",
	"The Batman", "Avatar", "Titanic", "Jurassic Park", "Star Wars",
}
