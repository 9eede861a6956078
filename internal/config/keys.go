package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Source tree holding the static templates
	KeyConfigDir = "GRUB_STATIC_CONFIG_DIR"
	KeyDropinDir = "GRUB_STATIC_DROPIN_DIR"

	// Target layout, relative to the install root
	KeyBootDir  = "GRUB_STATIC_BOOT_DIR"
	KeyGrub2Dir = "GRUB_STATIC_GRUB2_DIR"
	KeyEFIDir   = "GRUB_STATIC_EFI_DIR"

	// Output
	KeyMode         = "GRUB_STATIC_MODE"          // octal, e.g. 0644
	KeyStrictVendor = "GRUB_STATIC_STRICT_VENDOR" // true/false
)

// DefaultFilePath is where the configuration is read from when no path is given
const DefaultFilePath = "/etc/bootupd/grub-static.conf"

// Default values for configuration keys
var Defaults = map[string]string{
	KeyConfigDir:    "/usr/lib/bootupd/grub2-static",
	KeyDropinDir:    "configs.d",
	KeyBootDir:      "boot",
	KeyGrub2Dir:     "grub2",
	KeyEFIDir:       "boot/efi/EFI",
	KeyMode:         "0644",
	KeyStrictVendor: "false",
}
