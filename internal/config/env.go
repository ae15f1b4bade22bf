package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr   string
	GinMode   string
	DBDSN     string
	JWTSecret string

	// Payment gateway redirect endpoints. The gateway sends the customer back
	// to these after the hosted payment page finishes (or is abandoned).
	PaymentGatewayURL string
	PaymentSuccessURL string
	PaymentFailURL    string
	PaymentCancelURL  string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/travelbook?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	gateway := strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_URL"))
	if gateway == "" {
		gateway = "https://sandbox.gateway.example/pay"
	}

	return Env{
		AppAddr:           appAddr,
		GinMode:           strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:             dsn,
		JWTSecret:         secret,
		PaymentGatewayURL: gateway,
		PaymentSuccessURL: envOr("PAYMENT_SUCCESS_URL", "/payment/success"),
		PaymentFailURL:    envOr("PAYMENT_FAIL_URL", "/payment/fail"),
		PaymentCancelURL:  envOr("PAYMENT_CANCEL_URL", "/payment/cancel"),
	}
}

func envOr(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
