package vocabulary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamespacesEndInSlash(t *testing.T) {
	for _, iri := range []string{string(MU), string(MUCore), string(MUExt), ServiceResourceBase} {
		assert.True(t, strings.HasSuffix(iri, "/"), "%s must end in /", iri)
	}
}

func TestNamespaceValues(t *testing.T) {
	assert.Equal(t, "http://mu.semte.ch/vocabularies/", string(MU))
	assert.Equal(t, "http://mu.semte.ch/vocabularies/core/", string(MUCore))
	assert.Equal(t, "http://mu.semte.ch/vocabularies/ext/", string(MUExt))
	assert.Equal(t, "http://mu.semte.ch/services/", ServiceResourceBase)
	assert.Equal(t, "http://mu.semte.ch/vocabularies/core/uuid", UUID)
}

func TestTerm(t *testing.T) {
	tests := []struct {
		name     string
		ns       Namespace
		local    string
		expected string
	}{
		{"ext class", MUExt, "Order", "http://mu.semte.ch/vocabularies/ext/Order"},
		{"core predicate", MUCore, "uuid", "http://mu.semte.ch/vocabularies/core/uuid"},
		{"empty local", MU, "", "http://mu.semte.ch/vocabularies/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.ns.Term(tt.local))
		})
	}
}

func TestLocal(t *testing.T) {
	local, ok := MUExt.Local("http://mu.semte.ch/vocabularies/ext/Order")
	assert.True(t, ok)
	assert.Equal(t, "Order", local)

	_, ok = MUExt.Local("http://mu.semte.ch/vocabularies/core/uuid")
	assert.False(t, ok)

	_, ok = MUExt.Local(string(MUExt))
	assert.False(t, ok, "bare namespace has no local name")

	assert.True(t, MU.Contains(MUCore.Term("uuid")), "sub-vocabularies live under mu")
}

func TestPrefixDeclarations(t *testing.T) {
	expected := "PREFIX mu: <http://mu.semte.ch/vocabularies/>\n" +
		"PREFIX mu-core: <http://mu.semte.ch/vocabularies/core/>\n" +
		"PREFIX mu-ext: <http://mu.semte.ch/vocabularies/ext/>\n"
	assert.Equal(t, expected, PrefixDeclarations())
	assert.Len(t, Prefixes(), 3)
}
