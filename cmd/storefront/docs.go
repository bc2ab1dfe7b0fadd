package main

// @title Book My Seva Storefront API
// @version 1.0
// @description Storefront backend for pooja bookings, kit subscriptions and devotional content with full observability stack (Prometheus, Jaeger, Grafana)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@bookmyseva.example.com

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name CustomerAuth
// @tag.description OTP sign-in, profile and address book endpoints

// @tag.name Catalog
// @tag.description Pooja and kit catalog endpoints

// @tag.name Favorites
// @tag.description Wishlist endpoints

// @tag.name Checkout
// @tag.description Quote and booking endpoints

// @tag.name Content
// @tag.description Blog, panchangam and static page endpoints

// @tag.name Enquiries
// @tag.description Festival and special event enquiry endpoints

// @tag.name Health
// @tag.description Health check endpoints
