package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"florist-backend/internal/domains/product/model"
)

func TestScanTargetsMatchProductColumns(t *testing.T) {
	columns := strings.Split(productColumns, ",")

	var p model.Product
	assert.Len(t, scanTargets(&p), len(columns),
		"every selected column needs a scan destination")
}
