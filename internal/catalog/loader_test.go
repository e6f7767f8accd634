package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
product: macbook-pro
variants:
  - id: mbp-sg-512
    specs:
      - {name: Color, value: Space Gray, label: "Space Gray (Matte)"}
      - {name: Storage, value: 512GB}
  - id: mbp-sg-1tb
    specs:
      Color: Space Gray
      Storage: 1TB
  - specs:
      Storage: " 512GB "
      Color: Silver
`

	c, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, "macbook-pro", c.Product)
	require.Len(t, c.Variants, 3)

	first := c.Variants[0]
	assert.Equal(t, "mbp-sg-512", first.ID)
	require.Len(t, first.Specs, 2)
	assert.Equal(t, SpecValue{Name: "Color", Value: "Space Gray", Label: "Space Gray (Matte)"}, first.Specs[0])

	// Mapping shorthand keeps document order.
	second := c.Variants[1]
	assert.Equal(t, SpecList{{Name: "Color", Value: "Space Gray"}, {Name: "Storage", Value: "1TB"}}, second.Specs)

	// Missing id is generated, values are trimmed.
	third := c.Variants[2]
	_, err = uuid.Parse(third.ID)
	require.NoError(t, err)
	assert.Equal(t, "Storage", third.Specs[0].Name)
	assert.Equal(t, "512GB", third.Specs[0].Value)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("product: empty\nvariants: []\n"))
	require.ErrorIs(t, err, ErrNoVariants)

	_, err = Parse([]byte("variants:\n  - id: x\n    specs: 12\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse catalog YAML")

	_, err = Parse([]byte("variants: [\n"))
	require.Error(t, err)
}

func TestLoadFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")

	in := &Catalog{
		Product: "phone",
		Variants: []Variant{
			{ID: "p1", Specs: SpecList{{Name: "Color", Value: "Black"}, {Name: "Storage", Value: "128GB"}}},
		},
	}

	require.NoError(t, WriteFile(in, path))

	out, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
