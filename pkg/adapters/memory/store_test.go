package memory_test

import (
	"testing"

	"github.com/aretw0/najia/pkg/adapters/memory"
	"github.com/aretw0/najia/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunReadingStoreContract(t, store)
}
