package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTable(t *testing.T) {
	t.Run("PreservesOrder", func(t *testing.T) {
		raw := `{
			"30": {"itemType": 3, "displayProperties": {"name": "C"}},
			"10": {"itemType": 19},
			"20": {"reusablePlugItems": [{"plugItemHash": 111}, {"plugItemHash": 222}]}
		}`

		table, err := DecodeTable(strings.NewReader(raw))
		require.NoError(t, err)
		assert.Equal(t, 3, table.Len())

		var keys []string
		table.Each(func(key string, _ *ItemDefinition) { keys = append(keys, key) })
		assert.Equal(t, []string{"30", "10", "20"}, keys)

		def, ok := table.Lookup(20)
		require.True(t, ok)
		assert.Equal(t, []PlugItem{{PlugItemHash: 111}, {PlugItemHash: 222}}, def.ReusablePlugItems)
	})

	t.Run("OptionalBlocksStayNil", func(t *testing.T) {
		table, err := DecodeTable(strings.NewReader(`{"1": {"itemType": 3}}`))
		require.NoError(t, err)

		def, ok := table.Get("1")
		require.True(t, ok)
		assert.Nil(t, def.DisplayProperties)
		assert.Nil(t, def.Inventory)
		assert.Nil(t, def.Sockets)
		assert.Equal(t, "", def.Name())
		assert.Equal(t, TierUnknown, def.TierType())
		assert.Nil(t, def.SocketEntries())
	})

	t.Run("DuplicateKeyKeepsFirstPosition", func(t *testing.T) {
		table, err := DecodeTable(strings.NewReader(`{"1": {"itemType": 1}, "2": {}, "1": {"itemType": 3}}`))
		require.NoError(t, err)
		assert.Equal(t, 2, table.Len())

		def, _ := table.Get("1")
		assert.Equal(t, 3, def.ItemType)
	})

	t.Run("TrailingWhitespace", func(t *testing.T) {
		table, err := DecodeTable(strings.NewReader("{\"1\": {\"itemType\": 3}}\n\t "))
		require.NoError(t, err)
		assert.Equal(t, 1, table.Len())
	})

	t.Run("Malformed", func(t *testing.T) {
		inputs := map[string]string{
			"Array":     `[1, 2]`,
			"Scalar":    `"nope"`,
			"Truncated": `{"1": {"itemType": 3}`,
			"BadEntry":  `{"1": {"itemType": "weapon"}}`,
			"Empty":     ``,
			"Trailing":  `{"1": {"itemType": 3}} {"garbage": `,
			"TwoTables": `{"1": {}} {"2": {}}`,
		}
		for name, in := range inputs {
			t.Run(name, func(t *testing.T) {
				_, err := DecodeTable(strings.NewReader(in))
				assert.Error(t, err)
			})
		}
	})
}

func TestTable_Merge(t *testing.T) {
	items, err := DecodeTable(strings.NewReader(`{"1": {"itemType": 3}, "2": {"itemType": 19}}`))
	require.NoError(t, err)
	plugSets, err := DecodeTable(strings.NewReader(`{"2": {"reusablePlugItems": [{"plugItemHash": 9}]}, "3": {"reusablePlugItems": []}}`))
	require.NoError(t, err)

	added := items.Merge(plugSets)
	assert.Equal(t, 1, added)
	assert.Equal(t, 3, items.Len())

	def, _ := items.Get("2")
	assert.Equal(t, 19, def.ItemType, "existing entries win over merged ones")

	assert.Equal(t, 0, items.Merge(nil))
}

func TestHash(t *testing.T) {
	v := uint32(42)
	assert.Equal(t, uint32(42), Hash(&v))
	assert.Equal(t, uint32(0), Hash(nil))
}
