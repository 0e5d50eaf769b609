package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.
type Config struct {
	Env            string // application environment (e.g. "dev", "prod")
	Port           string // HTTP port to listen on
	MongoURI       string // MongoDB connection string
	MongoDatabase  string // database name within the cluster
	JWTSecret      string // secret used to sign JWTs
	AccessTTLMin   int    // access token time-to-live in minutes
	RefreshTTLDays int    // refresh token time-to-live in days
	BcryptCost     int    // bcrypt cost for password hashing
	OMDbAPIKey     string // API key for the OMDb metadata service
	OMDbAPIURL     string // base URL of the OMDb metadata service
	NewsAPIKey     string // API key for the news feed provider
	NewsAPIURL     string // base URL of the news feed provider
	AdminUsername  string // username of the bootstrap admin account
	AdminPassword  string // password of the bootstrap admin account
	ItemsPerPage   int    // default page size for list endpoints
}

// ProductionHouses is the fixed catalog of studio names the platform knows
// about.  Metadata normalization resolves the upstream production string
// against this list, and the movies API exposes it verbatim.
var ProductionHouses = []string{
	"Marvel Studios", "Warner Bros. Pictures", "Universal Pictures",
	"Paramount Pictures", "20th Century Studios", "Columbia Pictures",
	"Lionsgate Films", "Walt Disney Pictures", "Sony Pictures Animation",
	"DreamWorks Pictures", "New Line Cinema", "A24 Films",
	"Blumhouse Productions", "Legendary Entertainment", "MGM Studios",
	"Dharma Productions", "Yash Raj Films", "Red Chillies Entertainment",
	"T-Series", "Eros International", "Sajid Nadiadwala Productions",
	"Phantom Films", "Aamir Khan Productions", "Studio Ghibli",
	"Toho", "Pathé", "Wild Bunch", "Madhouse", "Bones",
	"Toei Animation", "Kyoto Animation", "Wit Studio", "MAPPA",
	"Trigger", "Sunrise", "Studio Pierrot", "Silver Link",
}

// Load reads configuration from environment variables.  Required variables
// are enforced by must() and missing values exit with a fatal log message;
// values with sensible defaults fall back when unset.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),  // environment (dev/test/prod)
		Port:           must("APP_PORT"), // port to bind the HTTP server
		MongoURI:       must("MONGO_URI"),
		MongoDatabase:  envStr("MONGO_DATABASE", "movie_platform"),
		JWTSecret:      must("JWT_SECRET"),                // secret used for signing JWTs
		AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"),   // TTL for access tokens in minutes
		RefreshTTLDays: mustInt("REFRESH_TOKEN_TTL_DAYS"), // TTL for refresh tokens in days
		BcryptCost:     mustInt("BCRYPT_COST"),            // bcrypt cost factor
		OMDbAPIKey:     must("OMDB_API_KEY"),              // key for the metadata upstream
		OMDbAPIURL:     envStr("OMDB_API_URL", "http://www.omdbapi.com/"),
		NewsAPIKey:     os.Getenv("NEWS_API_KEY"), // empty key forces the mock fallback
		NewsAPIURL:     envStr("NEWS_API_URL", "https://newsapi.org/v2/everything"),
		AdminUsername:  envStr("ADMIN_USERNAME", "admin"),
		AdminPassword:  envStr("ADMIN_PASSWORD", "admin"),
		ItemsPerPage:   envInt("ITEMS_PER_PAGE", 20),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
