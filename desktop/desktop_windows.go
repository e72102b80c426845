// Copyright © 2025 The Gotheme Project.

package desktop

import (
	"errors"
	"strconv"
	"strings"
	"unsafe"

	"github.com/StackExchange/wmi"
	"github.com/zosmac/gocore"
	"github.com/zosmac/gotheme/theme"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const (
	personalizeKey = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`
	runKey         = `Software\Microsoft\Windows\CurrentVersion\Run`

	// Windows symbols for broadcasting a settings change
	hwndBroadcast   = 0xffff
	wmSettingChange = 0x001a
	smtoAbortIfHung = 0x0002
	broadcastWait   = 1000 // milliseconds

	// builds that introduced the appearance values
	appsBuild   = 14393 // 1607
	systemBuild = 18362 // 1903
)

var (
	user32             = windows.NewLazySystemDLL("user32.dll")
	sendMessageTimeout = user32.NewProc("SendMessageTimeoutW").Call

	// valueNames maps surfaces to the registry values holding their appearance.
	valueNames = map[theme.Surface]string{
		theme.Apps:   "AppsUseLightTheme",
		theme.System: "SystemUsesLightTheme",
	}
)

type (
	// registryDesktop keeps the desktop state in the current user's registry hive.
	registryDesktop struct{}

	// win32OperatingSystem receives the Win32_OperatingSystem WMI Class properties queried.
	// See https://docs.microsoft.com/en-us/windows/win32/cimwin32prov/win32-operatingsystem
	win32OperatingSystem struct {
		Caption     string
		Version     string
		BuildNumber string
	}
)

// open returns the registry backed desktop.
func open() (Desktop, error) {
	return registryDesktop{}, nil
}

// Get reads the appearance of a surface, light if the value is absent as on
// older versions of Windows.
func (registryDesktop) Get(s theme.Surface) theme.Appearance {
	if !theme.Surfaces.IsValid(s) {
		return theme.Light
	}
	name := valueNames[s]
	key, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE)
	if err != nil {
		if err != registry.ErrNotExist {
			gocore.Error("OpenKey", err, map[string]string{"key": personalizeKey}).Info()
		}
		return theme.Light
	}
	defer key.Close()

	light, _, err := key.GetIntegerValue(name)
	if err != nil {
		if err != registry.ErrNotExist {
			gocore.Error("GetIntegerValue", err, map[string]string{"value": name}).Info()
		}
		return theme.Light
	}
	return theme.Appearance{Dark: light == 0}
}

// Set writes the appearance of a surface, and if it changed notifies
// running applications to repaint.
func (registryDesktop) Set(s theme.Surface, a theme.Appearance) error {
	if !theme.Surfaces.IsValid(s) {
		return &WriteError{Surface: s, Err: errors.New("unknown surface")}
	}
	name := valueNames[s]
	key, _, err := registry.CreateKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return &WriteError{Surface: s, Err: err}
	}
	defer key.Close()

	var light uint32 = 1
	if a.Dark {
		light = 0
	}
	if current, _, err := key.GetIntegerValue(name); err == nil && current == uint64(light) {
		return nil
	}
	if err := key.SetDWordValue(name, light); err != nil {
		return &WriteError{Surface: s, Err: err}
	}

	broadcast("ImmersiveColorSet")
	return nil
}

// broadcast sends WM_SETTINGCHANGE for an area of the settings to all top level windows.
func broadcast(area string) {
	param, err := windows.UTF16PtrFromString(area)
	if err != nil {
		return
	}
	var result uintptr
	if r, _, err := sendMessageTimeout(
		hwndBroadcast,
		wmSettingChange,
		0,
		uintptr(unsafe.Pointer(param)),
		smtoAbortIfHung,
		broadcastWait,
		uintptr(unsafe.Pointer(&result)),
	); r == 0 {
		gocore.Error("SendMessageTimeout", err, map[string]string{"area": area}).Info()
	}
}

// EnableAutostart registers the executable to start at logon.
func (registryDesktop) EnableAutostart(appID, execPath string) error {
	if strings.ContainsRune(execPath, ' ') && !strings.HasPrefix(execPath, `"`) {
		execPath = `"` + execPath + `"`
	}
	key, _, err := registry.CreateKey(registry.CURRENT_USER, runKey, registry.QUERY_VALUE|registry.SET_VALUE)
	if err != nil {
		return &AutostartError{AppID: appID, Enable: true, Err: err}
	}
	defer key.Close()

	if current, _, err := key.GetStringValue(appID); err == nil && current == execPath {
		return nil
	}
	if err := key.SetStringValue(appID, execPath); err != nil {
		return &AutostartError{AppID: appID, Enable: true, Err: err}
	}
	return nil
}

// DisableAutostart removes the logon registration.
func (registryDesktop) DisableAutostart(appID string) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKey, registry.SET_VALUE)
	if err == registry.ErrNotExist {
		return nil
	}
	if err != nil {
		return &AutostartError{AppID: appID, Err: err}
	}
	defer key.Close()

	if err := key.DeleteValue(appID); err != nil && err != registry.ErrNotExist {
		return &AutostartError{AppID: appID, Err: err}
	}
	return nil
}

// probe queries WMI for the operating system build.
func probe() (Info, error) {
	wos := []win32OperatingSystem{}
	if err := wmi.Query("SELECT Caption, Version, BuildNumber FROM Win32_OperatingSystem", &wos); err != nil {
		return Info{}, gocore.Error("Win32_OperatingSystem", err)
	}
	if len(wos) == 0 {
		return Info{}, gocore.Error("Win32_OperatingSystem", errors.New("no instance"))
	}

	build, _ := strconv.Atoi(wos[0].BuildNumber)
	return Info{
		Caption: wos[0].Caption,
		Version: wos[0].Version,
		Build:   build,
		Supported: map[theme.Surface]bool{
			theme.Apps:   build >= appsBuild,
			theme.System: build >= systemBuild,
		},
	}, nil
}
