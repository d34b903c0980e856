package accessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"order-id", "orderid"},
		{"orderId", "orderid"},
		{"ORDERID", "orderid"},
		{"customerName", "customername"},
		{"XMLParser", "xmlparser"},
		{"getHTTPResponse", "gethttpresponse"},
		{"Price_Cents", "pricecents"},
		{"", ""},
		{"A", "a"},
		{"order_item-ID", "orderitemid"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected []string
	}{
		{"OrderID", []string{"order", "id"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"getHTTPResponse", []string{"get", "http", "response"}},
		{"customer_name", []string{"customer", "name"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, TokenizeIdent(tt.input))
		})
	}
}

func TestFirstCharacterToUpperCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "UserName", FirstCharacterToUpperCase("userName"))
	assert.Equal(t, "Name", FirstCharacterToUpperCase("Name"))
	assert.Equal(t, "Über", FirstCharacterToUpperCase("über"))
	assert.Equal(t, "_x", FirstCharacterToUpperCase("_x"))
	assert.Empty(t, FirstCharacterToUpperCase(""))
}

func TestMethodNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		map[string]string{"name": "GetName", "married": "GetMarried"},
		MethodNames([]string{"name", "married"}, GetPrefix),
	)
	assert.Empty(t, MethodNames(nil, SetPrefix))
}
