// Package core provides the cell, style and color types shared by the
// layers, the compositor and the terminal backends.
package core
