package handlers

// @title Book Library API
// @version 1.0
// @description Book catalog with a review sentiment workflow

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name books
// @tag.description Book catalog lookups

// @tag.name reviews
// @tag.description Review submission and sentiment analysis
