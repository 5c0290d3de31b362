package request

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradeCutRequestBindsZeroAmounts(t *testing.T) {
	// Zero weights and prices are real submissions; they must bind and reach
	// the calculator instead of failing as missing fields.
	var req GradeCutRequest
	body := []byte(`{"totalWeight":100,"basePrice":0,"grades":[{"label":"ตกไซซ์","weight":0,"price":15}]}`)

	require.NoError(t, binding.JSON.BindBody(body, &req))

	assert.Equal(t, 100.0, req.TotalWeight)
	assert.Equal(t, 0.0, req.BasePrice)

	input := req.ToInput()
	require.Len(t, input.Grades, 1)
	assert.Equal(t, 0.0, input.Grades[0].Weight)
}
