package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
	}

	// JSON numbers decode as float64
	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
	}

	ctx.Locals("user_id", uint(rawID))
	ctx.Locals("username", claims["username"])
	return ctx.Next()
}

// UserID reads the authenticated user id set by JwtMiddleware.
// Returns 0 when the request is anonymous.
func UserID(ctx *fiber.Ctx) uint {
	if id, ok := ctx.Locals("user_id").(uint); ok {
		return id
	}
	return 0
}

// Username reads the authenticated username set by JwtMiddleware.
func Username(ctx *fiber.Ctx) string {
	if name, ok := ctx.Locals("username").(string); ok {
		return name
	}
	return ""
}
