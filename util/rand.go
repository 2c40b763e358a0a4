package util
import (
	"github.com/google/uuid"
)

// GenID returns a fresh identifier used to tie log lines of one operation
// together.
func GenID() string {
	return uuid.NewString()
}
