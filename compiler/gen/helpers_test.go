package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPascal(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"user_info", "UserInfo"},
		{"full_name", "FullName"},
		{"user_id", "UserID"},
		{"http_code", "HTTPCode"},
		{"full-admin", "FullAdmin"},
		{"already", "Already"},
		{"authorOf", "AuthorOf"},
		{"Post", "Post"},
		{"a", "A"},
		{"a_b", "AB"},
		{"api_url", "APIURL"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, pascal(tt.input))
		})
	}
}

func TestCamel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"user_info", "userInfo"},
		{"user_id", "userID"},
		{"http_code", "httpCode"},
		{"authorOf", "authorOf"},
		{"Posts", "posts"},
		{"a", "a"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, camel(tt.input))
		})
	}
}

func TestPkgName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"relations", "relations"},
		{"My-Relations", "my_relations"},
		{"v1.schema", "v1_schema"},
		{"2gen", "_2gen"},
		{".", "relations"},
		{"", "relations"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, pkgName(tt.input))
		})
	}
}

func TestConfigPackageName(t *testing.T) {
	assert.Equal(t, "relations", (&Config{}).PackageName())
	assert.Equal(t, "out", (&Config{Target: "gen/out"}).PackageName())
	assert.Equal(t, "schema", (&Config{Target: "gen/out", Package: "example.com/app/schema"}).PackageName())
}
