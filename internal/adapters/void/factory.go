package void

import (
	"bytes"
	"fmt"

	"github.com/bnema/void-bridge/internal/domain"
	"github.com/bnema/void-bridge/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

type Factory struct{}

var _ ports.ManagerFactory = Factory{}

func (Factory) New(params domain.ManagerParams) (ports.Manager, error) {
	m, err := New(params)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Restore decodes a blob written by MarshalState. A blank blob is not an error;
// it simply holds no manager.
func (Factory) Restore(state []byte) (ports.Manager, error) {
	if len(bytes.TrimSpace(state)) == 0 {
		return nil, nil
	}

	var schema stateSchema
	if err := toml.Unmarshal(state, &schema); err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}
	schema.applyDefaults()
	if err := schema.validateVersion(); err != nil {
		return nil, err
	}

	m, err := fromSchema(schema)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) MarshalState() ([]byte, error) {
	m.mu.Lock()
	schema := toSchema(m)
	m.mu.Unlock()

	data, err := toml.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}
