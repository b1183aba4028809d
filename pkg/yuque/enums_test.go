package yuque

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVisibility(t *testing.T) {
	tests := []struct {
		input   string
		want    Visibility
		wantErr bool
	}{
		{input: "public", want: Public},
		{input: "PUBLIC", want: Public},
		{input: "1", want: Public},
		{input: "private", want: Private},
		{input: " 0 ", want: Private},
		{input: "internal", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVisibility(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("Owner")
	require.NoError(t, err)
	assert.Equal(t, RoleOwner, role)

	role, err = ParseRole("member")
	require.NoError(t, err)
	assert.Equal(t, RoleMember, role)

	_, err = ParseRole("admin")
	assert.Error(t, err)
}

func TestEnums_IsValidAndString(t *testing.T) {
	assert.True(t, UserTypeGroup.IsValid())
	assert.False(t, UserType("Robot").IsValid())

	assert.Equal(t, "public", Public.String())
	assert.Equal(t, "Visibility(7)", Visibility(7).String())
	assert.False(t, Visibility(7).IsValid())

	assert.Equal(t, "published", Published.String())
	assert.False(t, Status(2).IsValid())

	assert.Equal(t, "Owner", RoleOwner.String())
	assert.Equal(t, "Member", RoleMember.String())
	assert.False(t, Role(3).IsValid())

	assert.True(t, FormatLake.IsValid())
	assert.False(t, Format("docx").IsValid())

	assert.True(t, RepoKindAll.IsValid())
	assert.False(t, RepoKind("Sheet").IsValid())

	assert.Equal(t, "Doc", RecentDocs.String())
	assert.False(t, RecentKind("Group").IsValid())
}
