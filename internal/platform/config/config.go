package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// PlaceholderPayeeVPA is the shipped default for UPI_PAYEE_VPA. The payment
// generator refuses to emit codes while the VPA is unset or still equals this
// placeholder, so a misconfigured deployment fails closed instead of
// producing QR codes that route money nowhere.
const PlaceholderPayeeVPA = "yourname@upi"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	AdminUsername     string
	AdminPasswordHash string

	// Payment target configuration.
	UPIPayeeVPA  string
	UPIPayeeName string

	// Defaults used when auto-provisioning an active fund.
	DefaultFundName        string
	DefaultFundDescription string
	DefaultFundTarget      decimal.Decimal

	// Rate limit for the public donation/payment endpoints, in
	// ulule/limiter format (e.g. "30-M" for 30 requests per minute).
	DonationRateLimit string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "donation-backend")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("UPI_PAYEE_VPA", PlaceholderPayeeVPA)
	viper.SetDefault("UPI_PAYEE_NAME", "Donation Fund")
	viper.SetDefault("DEFAULT_FUND_NAME", "General Fund")
	viper.SetDefault("DEFAULT_FUND_DESCRIPTION", "General purpose donation fund")
	viper.SetDefault("DEFAULT_FUND_TARGET", "100000")
	viper.SetDefault("DONATION_RATE_LIMIT", "30-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AdminUsername = viper.GetString("ADMIN_USERNAME")
	cfg.AdminPasswordHash = viper.GetString("ADMIN_PASSWORD_HASH")
	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set. Admin login will not function.")
	}

	cfg.UPIPayeeVPA = viper.GetString("UPI_PAYEE_VPA")
	if cfg.UPIPayeeVPA == PlaceholderPayeeVPA {
		log.Println("Warning: UPI_PAYEE_VPA left at placeholder. Payment QR generation will fail until it is set.")
	}
	cfg.UPIPayeeName = viper.GetString("UPI_PAYEE_NAME")

	cfg.DefaultFundName = viper.GetString("DEFAULT_FUND_NAME")
	cfg.DefaultFundDescription = viper.GetString("DEFAULT_FUND_DESCRIPTION")

	targetStr := viper.GetString("DEFAULT_FUND_TARGET")
	target, err := decimal.NewFromString(targetStr)
	if err != nil || target.LessThanOrEqual(decimal.Zero) {
		target = decimal.NewFromInt(100000)
		log.Printf("Warning: Invalid value for DEFAULT_FUND_TARGET ('%s'). Defaulting to %s.\n", targetStr, target)
	}
	cfg.DefaultFundTarget = target

	cfg.DonationRateLimit = viper.GetString("DONATION_RATE_LIMIT")

	origins := viper.GetString("CORS_ALLOWED_ORIGINS")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg, nil
}
