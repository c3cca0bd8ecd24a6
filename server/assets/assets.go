// Copyright 2024 - 2026, Raymond de Looff and contributors
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package assets provides access to the application's embedded assets,
most notably the gettext catalogs under po/.
*/
package assets

import (
	"embed"
)

// FS provides access to the embedded file system.
var FS embed.FS
