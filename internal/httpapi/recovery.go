package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kegliz/graphstate/graphsim"
)

// recoverGraphsim wraps a handler so a panic from the core engine's
// programming-error contract (graphsim.ErrOutOfRange, graphsim.ErrSameQubit)
// is translated into a 400 Bad Request instead of escaping as a bare panic
// up to gin's generic Recovery middleware. Any other recovered panic becomes
// a 500 with the same generic body the rest of this API uses.
func (a *apiServer) recoverGraphsim(next gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			switch err := r.(type) {
			case graphsim.ErrOutOfRange:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case graphsim.ErrSameQubit:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				a.logger.Error().Interface("panic", r).Msg("recovered panic")
				c.JSON(http.StatusInternalServerError, gin.H{"error": internalServerErrorMsg})
			}
			c.Abort()
		}()
		next(c)
	}
}
