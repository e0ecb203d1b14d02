package domain

import "strings"

// AndroidProfile describes how to drive the NDK for one android triple.
type AndroidProfile struct {
	Platform        string `yaml:"platform"`
	Target          string `yaml:"target"`
	ToolchainPrefix string `yaml:"toolchain_prefix"`
	Arch            string `yaml:"arch"`
	Lib             string `yaml:"lib"`
	ToolchainName   string `yaml:"toolchain_name"`
}

// API returns the numeric API level of the profile's platform, e.g. "21" for "android-21".
func (p AndroidProfile) API() string {
	return strings.TrimPrefix(p.Platform, "android-")
}

// DefaultAndroidProfile is the lowest commonly supported android configuration.
func DefaultAndroidProfile() AndroidProfile {
	return androidProfiles[0]
}

var androidProfiles = []AndroidProfile{
	{
		Platform:        "android-21",
		Target:          "armv7-linux-androideabi",
		ToolchainPrefix: "arm-linux-androideabi",
		Arch:            "arm",
		Lib:             "armeabi-v7a",
		ToolchainName:   "arm-linux-androideabi",
	},
	{
		Platform:        "android-21",
		Target:          "aarch64-linux-android",
		ToolchainPrefix: "aarch64-linux-android",
		Arch:            "arm64",
		Lib:             "arm64-v8a",
		ToolchainName:   "aarch64-linux-android",
	},
	{
		Platform:        "android-21",
		Target:          "i686-linux-android",
		ToolchainPrefix: "x86",
		Arch:            "x86",
		Lib:             "x86",
		ToolchainName:   "i686-linux-android",
	},
	{
		Platform:        "android-21",
		Target:          "x86_64-linux-android",
		ToolchainPrefix: "x86_64",
		Arch:            "x86_64",
		Lib:             "x86_64",
		ToolchainName:   "x86_64-linux-android",
	},
}

// LookupAndroidProfile returns the profile whose triple occurs in target.
func LookupAndroidProfile(target string) (AndroidProfile, bool) {
	for _, p := range androidProfiles {
		if strings.Contains(target, p.Target) {
			return p, true
		}
	}
	return AndroidProfile{}, false
}
