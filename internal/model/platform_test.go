package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaskSecret(t *testing.T) {
	require.Equal(t, "", MaskSecret(""))
	require.Equal(t, "****", MaskSecret("abc"))
	require.Equal(t, "****", MaskSecret("abcd"))
	require.Equal(t, "*************cdef", MaskSecret("lk-0123456789cdef"))
}

func TestPlatformResponseMasksSecrets(t *testing.T) {
	platform := Platform{
		SmtpPassword: "hunter2",
		LicenseKey:   "lk-0123456789cdef",
	}

	response := platform.ToResponse()
	require.True(t, response.SmtpPasswordSet)
	require.Equal(t, "*************cdef", response.MaskedLicenseKey)
}
