//go:build windows

package icon

import (
	"errors"
	"fmt"
	"image"
	"strings"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	gdi32                = windows.NewLazySystemDLL("gdi32.dll")
	shell32              = windows.NewLazySystemDLL("shell32.dll")
	procDrawIconEx       = user32.NewProc("DrawIconEx")
	procCreateDIBSection = gdi32.NewProc("CreateDIBSection")
	procExtractIconExW   = shell32.NewProc("ExtractIconExW")
)

// extract tries the requested icon index, then index 0, then whatever icon
// the shell shows for the file.
func extract(path string, index int) (image.Image, error) {
	clean := longPath(strings.Trim(path, `"`))
	if clean == "" {
		return nil, ErrUnsupported
	}

	hIcon, err := extractIconEx(clean, index)
	if err != nil && index != 0 {
		hIcon, err = extractIconEx(clean, 0)
	}
	if err != nil {
		hIcon, err = shellFileIcon(clean)
	}
	if err != nil {
		return nil, err
	}
	defer win.DestroyIcon(hIcon)

	return iconToImage(hIcon)
}

func longPath(p string) string {
	if len(p) > 260 && !strings.HasPrefix(p, `\\?\`) {
		return `\\?\` + p
	}
	return p
}

func extractIconEx(path string, index int) (win.HICON, error) {
	pPath, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}

	var large, small win.HICON
	ret, _, _ := procExtractIconExW.Call(
		uintptr(unsafe.Pointer(pPath)),
		uintptr(index),
		uintptr(unsafe.Pointer(&large)),
		uintptr(unsafe.Pointer(&small)),
		1,
	)
	if ret == 0 || (large == 0 && small == 0) {
		return 0, fmt.Errorf("ExtractIconExW %s index %d: no icon", path, index)
	}

	if large != 0 {
		if small != 0 {
			win.DestroyIcon(small)
		}
		return large, nil
	}
	return small, nil
}

func shellFileIcon(path string) (win.HICON, error) {
	pPath, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}

	var info win.SHFILEINFO
	flags := uint32(win.SHGFI_ICON | win.SHGFI_LARGEICON | win.SHGFI_USEFILEATTRIBUTES)
	ret := win.SHGetFileInfo(pPath, windows.FILE_ATTRIBUTE_NORMAL, &info, uint32(unsafe.Sizeof(info)), flags)
	if ret == 0 || info.HIcon == 0 {
		return 0, fmt.Errorf("SHGetFileInfo %s: %w", path, ErrUnsupported)
	}
	return info.HIcon, nil
}

func iconToImage(hIcon win.HICON) (image.Image, error) {
	var iconInfo win.ICONINFO
	if !win.GetIconInfo(hIcon, &iconInfo) {
		return nil, errors.New("GetIconInfo failed")
	}
	defer func() {
		if iconInfo.HbmColor != 0 {
			win.DeleteObject(win.HGDIOBJ(iconInfo.HbmColor))
		}
		if iconInfo.HbmMask != 0 {
			win.DeleteObject(win.HGDIOBJ(iconInfo.HbmMask))
		}
	}()

	width, height := 32, 32
	if iconInfo.HbmColor != 0 {
		var bmp win.BITMAP
		if win.GetObject(win.HGDIOBJ(iconInfo.HbmColor), unsafe.Sizeof(bmp), unsafe.Pointer(&bmp)) != 0 {
			width, height = int(bmp.BmWidth), int(bmp.BmHeight)
		}
	}

	hdcScreen := win.GetDC(0)
	if hdcScreen == 0 {
		return nil, errors.New("GetDC failed")
	}
	defer win.ReleaseDC(0, hdcScreen)

	hdcMem := win.CreateCompatibleDC(hdcScreen)
	if hdcMem == 0 {
		return nil, errors.New("CreateCompatibleDC failed")
	}
	defer win.DeleteDC(hdcMem)

	pixels, err := drawIcon(hdcMem, hIcon, width, height, win.DI_NORMAL)
	if err != nil {
		return nil, err
	}
	if hasAlpha(pixels) {
		return bgraToImage(pixels, nil, width, height), nil
	}

	// icons without an alpha channel carry transparency in the AND mask
	mask, err := drawIcon(hdcMem, hIcon, width, height, win.DI_MASK)
	if err != nil {
		mask = nil
	}
	return bgraToImage(pixels, mask, width, height), nil
}

// drawIcon renders hIcon into a fresh 32-bit DIB and returns a copy of its
// BGRA pixels.
func drawIcon(hdc win.HDC, hIcon win.HICON, width, height int, flags uint32) ([]byte, error) {
	var bi win.BITMAPINFO
	bi.BmiHeader = win.BITMAPINFOHEADER{
		BiSize:        uint32(unsafe.Sizeof(win.BITMAPINFOHEADER{})),
		BiWidth:       int32(width),
		BiHeight:      int32(-height), // top-down rows
		BiPlanes:      1,
		BiBitCount:    32,
		BiCompression: win.BI_RGB,
	}

	var bits unsafe.Pointer
	hBitmap, _, callErr := procCreateDIBSection.Call(
		uintptr(hdc),
		uintptr(unsafe.Pointer(&bi)),
		uintptr(win.DIB_RGB_COLORS),
		uintptr(unsafe.Pointer(&bits)),
		0,
		0,
	)
	if hBitmap == 0 {
		return nil, fmt.Errorf("CreateDIBSection: %w", callErr)
	}
	defer win.DeleteObject(win.HGDIOBJ(hBitmap))

	old := win.SelectObject(hdc, win.HGDIOBJ(hBitmap))
	defer win.SelectObject(hdc, old)

	ret, _, _ := procDrawIconEx.Call(
		uintptr(hdc),
		0,
		0,
		uintptr(hIcon),
		uintptr(width),
		uintptr(height),
		0,
		0,
		uintptr(flags),
	)
	if ret == 0 {
		return nil, errors.New("DrawIconEx failed")
	}

	pixels := make([]byte, width*height*4)
	copy(pixels, unsafe.Slice((*byte)(bits), len(pixels)))
	return pixels, nil
}
