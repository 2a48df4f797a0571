package handler

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMenuCSV(t *testing.T) {
	body := []byte("name,image,defaultPrice,stock,menuId\n" +
		"Xerox,https://example.com/x.jpg,2,1000,MENU001\n" +
		"Printout,,5,2000\n" +
		"Scan,,20\n")

	rows, err := parseMenuCSV(body)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Xerox", rows[0].Name)
	assert.Equal(t, "MENU001", rows[0].MenuID)
	assert.True(t, rows[0].DefaultPrice.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, 1000, rows[0].Stock)

	assert.Equal(t, "Printout", rows[1].Name)
	assert.Empty(t, rows[1].MenuID)
	assert.Equal(t, 2000, rows[1].Stock)

	// Stock column is optional and defaults to zero.
	assert.Equal(t, 0, rows[2].Stock)
}

func TestParseMenuCSVNoHeader(t *testing.T) {
	rows, err := parseMenuCSV([]byte("Xerox,,2,10\n"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Xerox", rows[0].Name)
}

func TestParseMenuCSVBadRows(t *testing.T) {
	_, err := parseMenuCSV([]byte("Xerox,img\n"))
	assert.Error(t, err)

	_, err = parseMenuCSV([]byte("Xerox,img,notaprice\n"))
	assert.Error(t, err)

	_, err = parseMenuCSV([]byte("Xerox,img,2,many\n"))
	assert.Error(t, err)
}
