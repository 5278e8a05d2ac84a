package memory

import (
	"testing"

	"github.com/quillon/quillon/pkg/ports"
)

func TestStoreContract(t *testing.T) {
	ports.RunSessionStoreContract(t, NewStore())
}
