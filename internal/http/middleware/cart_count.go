package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"lunarest.com/app/internal/http/cartcookie"
)

const cartCountKey = "cart_count"

// CartCounter is the slice of the cart store the badge needs.
type CartCounter interface {
	TotalItemCount(ctx context.Context, cartID string) (int, error)
}

// CartCount resolves the guest cart from its signed cookie and loads the
// total item count for the header badge. Failures degrade to zero.
func CartCount(ck *cartcookie.Codec, counter CartCounter, l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		n := 0

		if cartID, ok := ck.GetCartID(c); ok {
			count, err := counter.TotalItemCount(c.Request.Context(), cartID)
			if err != nil {
				l.Warn("cart_count_failed",
					slog.String("request_id", GetRequestID(c)),
					slog.String("cart_id", cartID),
					slog.Any("err", err),
				)
			} else {
				n = count
			}
		}

		c.Set(cartCountKey, n)
		c.Next()
	}
}

func GetCartCount(c *gin.Context) int {
	v, ok := c.Get(cartCountKey)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}
