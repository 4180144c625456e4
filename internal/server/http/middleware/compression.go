package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/ecomlite/internal/domain/errors"
)

// DecompressRequest inflates gzip request bodies up to maxBytes. Bodies in
// any other content coding are refused.
func DecompressRequest(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch encoding := contentEncoding(c.Request); encoding {
		case "", "identity":
			c.Next()
		case "gzip", "x-gzip":
			inflate(c, maxBytes)
		default:
			abortWithError(c, WithMessage(domainErrors.ErrInvalidInput, "Unsupported Content-Encoding: "+encoding))
		}
	}
}

func contentEncoding(r *http.Request) string {
	return strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Encoding")))
}

func inflate(c *gin.Context, maxBytes int64) {
	compressed := c.Request.Body
	defer compressed.Close()

	reader, err := gzip.NewReader(compressed)
	if err != nil {
		abortWithError(c, WithMessage(domainErrors.ErrInvalidInput, "Malformed gzip body"))
		return
	}
	defer reader.Close()

	c.Request.Body = http.MaxBytesReader(c.Writer, reader, maxBytes)
	c.Request.Header.Del("Content-Encoding")
	c.Request.ContentLength = -1
	c.Next()
}
