// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/learnsnap/pkg/slug"
)

/*
TestFrom verifies accent stripping and hyphen cleanup.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Web Development", "web-development"},
		{"  Data   Science  ", "data-science"},
		{"Café Crème", "cafe-creme"},
		{"C++ & Go!", "c-go"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
