package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampProgress(t *testing.T) {
	tests := map[int]int{
		-20: 0,
		0:   0,
		50:  50,
		100: 100,
		250: 100,
	}
	for in, want := range tests {
		assert.Equal(t, want, ClampProgress(in), "ClampProgress(%d)", in)
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleTeacher.Valid())
	assert.False(t, Role("admin").Valid())
	assert.False(t, Role("").Valid())
}
