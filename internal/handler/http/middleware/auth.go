package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stayhub-app/stayhub/internal/handler/http/dto"
	usecasecontract "github.com/stayhub-app/stayhub/internal/usecase/contract"
)

// AuthMiddleware rejects requests without a valid bearer token. On success it
// resolves the token to its user and stores the user's id, name, email and
// admin flag in the request context. There is no anonymous fallback.
func AuthMiddleware(userUsecase usecasecontract.IUserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing or malformed authorization header"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		user, err := userUsecase.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid or expired token"})
			return
		}

		c.Set("userID", user.ID)
		c.Set("userName", user.Name)
		c.Set("userEmail", user.Email)
		c.Set("isAdmin", user.IsAdmin)
		c.Next()
	}
}

// AdminOnly rejects authenticated users without the admin flag. Must run
// after AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("isAdmin") {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "admin access required"})
			return
		}
		c.Next()
	}
}
