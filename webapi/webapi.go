// Package webapi provides the HTTP API of the USDT/BOB rate service.
// It is organized into sub-packages:
// - rates: conversion, current rate and history endpoints
// - debug: rate store diagnostics
package webapi

import (
	"strings"

	"github.com/amirasaad/usdtbob/pkg/app"
	"github.com/amirasaad/usdtbob/webapi/common"
	debugweb "github.com/amirasaad/usdtbob/webapi/debug"
	ratesweb "github.com/amirasaad/usdtbob/webapi/rates"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	log := a.Deps.Logger

	fiberApp := fiber.New(fiber.Config{
		AppName:      "usdtbob",
		ErrorHandler: common.ErrorHandler,
	})

	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())
	fiberApp.Use(cors.New())
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
	}))

	// Uses X-Forwarded-For header when behind a proxy
	// Falls back to X-Real-IP or direct IP if needed
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		Storage:    a.Deps.LimiterStorage,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				// Take the first IP in the chain
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorJSON(c, fiber.StatusTooManyRequests, "rate limit exceeded")
		},
	}))

	// Health check endpoint
	fiberApp.Get(
		"/",
		func(c *fiber.Ctx) error {
			return c.SendString("USDT/BOB rate API is running")
		},
	)

	ratesweb.Routes(fiberApp, a.Converter, a.Resolver, a.History, log)
	debugweb.Routes(fiberApp, a.Config.DB, a.Deps.RateRepository, log)

	fiberApp.Use(func(c *fiber.Ctx) error {
		return common.ErrorJSON(c, fiber.StatusNotFound, "route not found: "+c.Path())
	})
	return fiberApp
}
