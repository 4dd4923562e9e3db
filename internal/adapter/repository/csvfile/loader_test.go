package csvfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	data := "city,bedrooms,average_rent\nToronto,1,2300\nToronto, 2, 2900.50\nQuebec City,1,1000\n"

	observations, err := Parse(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, observations, 3)

	assert.Equal(t, "Toronto", observations[1].City)
	assert.Equal(t, 2, observations[1].Bedrooms)
	assert.True(t, observations[1].AverageRent.Equal(decimal.RequireFromString("2900.5")))
	assert.Equal(t, "Quebec City", observations[2].City)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "empty", data: "", wantErr: "rent data is empty"},
		{name: "wrong header", data: "town,bedrooms,average_rent\n", wantErr: "unexpected column"},
		{name: "bad bedrooms", data: "city,bedrooms,average_rent\nToronto,two,2300\n", wantErr: "line 2: invalid bedrooms"},
		{name: "bad rent", data: "city,bedrooms,average_rent\nToronto,1,lots\n", wantErr: "line 2: invalid average_rent"},
		{name: "negative rent", data: "city,bedrooms,average_rent\nToronto,1,-5\n", wantErr: "average rent cannot be negative"},
		{name: "missing column", data: "city,bedrooms,average_rent\nToronto,1\n", wantErr: "failed to read rent data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rent.csv")
	require.NoError(t, os.WriteFile(path, []byte("city,bedrooms,average_rent\nOttawa,1,1500\n"), 0o600))

	observations, err := Load(path)
	require.NoError(t, err)
	require.Len(t, observations, 1)
	assert.Equal(t, "Ottawa", observations[0].City)

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}
