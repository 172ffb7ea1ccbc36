//go:build !tinygo

package hal

// Preview geometry shared by the window and terminal runners: the 10x12
// matrix, one empty row, then the status bar.
const (
	previewCols      = 10
	previewRows      = 12
	previewPitch     = 16
	previewLEDRadius = 6
)

func previewSize() (w, h int) {
	return previewCols * previewPitch, (previewRows + 2) * previewPitch
}

func ledCenter(col, row int) (x, y float32) {
	half := float32(previewPitch) / 2
	return float32(col*previewPitch) + half, float32(row*previewPitch) + half
}
