package grubconfigs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(l *Layout)
		wantErr bool
	}{
		{name: "defaults", modify: func(l *Layout) {}},
		{name: "relative config dir", modify: func(l *Layout) { l.ConfigDir = "usr/lib/bootupd" }, wantErr: true},
		{name: "escaping drop-in dir", modify: func(l *Layout) { l.DropinDir = "../configs.d" }, wantErr: true},
		{name: "absolute boot dir", modify: func(l *Layout) { l.BootDir = "/boot" }, wantErr: true},
		{name: "empty grub2 dir", modify: func(l *Layout) { l.Grub2Dir = "" }, wantErr: true},
		{name: "nested EFI dir", modify: func(l *Layout) { l.EFIDir = "efi/EFI" }},
		{name: "config name with separator", modify: func(l *Layout) { l.ConfigName = "x/grub.cfg" }, wantErr: true},
		{name: "zero mode", modify: func(l *Layout) { l.Mode = 0 }, wantErr: true},
		{name: "mode with type bits", modify: func(l *Layout) { l.Mode = 0644 | 1<<31 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayout()
			tt.modify(&l)
			err := l.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLayoutPaths(t *testing.T) {
	l := DefaultLayout()
	assert.Equal(t, "grub2/grub.cfg", l.ConfigPath())
	assert.Equal(t, "grub2/10_users.cfg", l.FragmentPath("10_users.cfg"))
}

func TestStageErrorMessage(t *testing.T) {
	err := ioError(StageCopyFragment, "a.cfg", assert.AnError)
	assert.Equal(t, "copying fragment a.cfg: "+assert.AnError.Error(), err.Error())
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, assert.AnError)

	notFound := &StageError{Stage: StageLocateVendor, Kind: ErrVendorNotFound}
	assert.Equal(t, "locating EFI vendor directory: no EFI vendor directory found", notFound.Error())
	assert.NotErrorIs(t, notFound, ErrIO)
}
