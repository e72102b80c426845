// Copyright © 2025 The Gotheme Project.

/*
Package desktop reads and writes the light/dark appearance of the desktop
surfaces, and registers the command to start at logon.

On Windows the appearance of each surface is a DWORD under
HKCU\Software\Microsoft\Windows\CurrentVersion\Themes\Personalize, 0 for
dark and 1 for light:
  - AppsUseLightTheme:   the default appearance of applications
  - SystemUsesLightTheme: the appearance of the taskbar and shell

Logon start is a string value under HKCU\...\CurrentVersion\Run mapping
an application identifier to the executable's path.

Other operating systems are unsupported; Memory provides an in-process
desktop for testing and dry runs.
*/
package desktop
