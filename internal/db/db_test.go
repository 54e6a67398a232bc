package db

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/role-taxonomy/internal/taxonomy"
)

func TestMarshalNullable(t *testing.T) {
	data, err := marshalNullable(nil)
	assert.NoError(t, err)
	assert.Nil(t, data, "empty lists store as SQL NULL")

	data, err = marshalNullable([]string{})
	assert.NoError(t, err)
	assert.Nil(t, data)

	data, err = marshalNullable([]string{"Go", "SQL"})
	assert.NoError(t, err)
	assert.JSONEq(t, `["Go","SQL"]`, string(data))
}

func TestTaxonomySeniority(t *testing.T) {
	assert.Equal(t, taxonomy.SeniorityEntry, taxonomySeniority("entry"))
	assert.Equal(t, taxonomy.SeniorityMid, taxonomySeniority("mid"))
	assert.Equal(t, taxonomy.SenioritySenior, taxonomySeniority("senior"))

	// Stored kits only carry buckets; anything else degrades to mid.
	assert.Equal(t, taxonomy.SeniorityMid, taxonomySeniority("vp"))
	assert.Equal(t, taxonomy.SeniorityMid, taxonomySeniority(""))
	assert.Equal(t, taxonomy.SeniorityMid, taxonomySeniority("garbage"))
}
