// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package profile

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetPrivateProfileStringW   = modkernel32.NewProc("GetPrivateProfileStringW")
	procWritePrivateProfileStringW = modkernel32.NewProc("WritePrivateProfileStringW")
	procSetLastError               = modkernel32.NewProc("SetLastError")
)

// SystemNative calls GetPrivateProfileStringW and WritePrivateProfileStringW
// from kernel32.dll.
type SystemNative struct{}

var _ Native = SystemNative{}

func defaultNative() Native {
	return SystemNative{}
}

func systemNative() (Native, error) {
	if err := modkernel32.Load(); err != nil {
		return nil, err
	}
	return SystemNative{}, nil
}

// ReadProfileString implements Native.
func (SystemNative) ReadProfileString(section, key, def Arg, buf []uint16, path string) (int, Errno) {
	if len(buf) == 0 {
		return 0, ErrorInvalidParameter
	}
	pSection, err := argPtr(section)
	if err != nil {
		return 0, ErrorInvalidParameter
	}
	pKey, err := argPtr(key)
	if err != nil {
		return 0, ErrorInvalidParameter
	}
	pDef, err := argPtr(def)
	if err != nil {
		return 0, ErrorInvalidParameter
	}
	pPath, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, ErrorInvalidParameter
	}
	n, errno := callWithLastError(procGetPrivateProfileStringW,
		uintptr(unsafe.Pointer(pSection)),
		uintptr(unsafe.Pointer(pKey)),
		uintptr(unsafe.Pointer(pDef)),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
		uintptr(unsafe.Pointer(pPath)),
	)
	runtime.KeepAlive(buf)
	return int(n), errno
}

// WriteProfileString implements Native.
func (SystemNative) WriteProfileString(section string, key, value Arg, path string) (bool, Errno) {
	pSection, err := windows.UTF16PtrFromString(section)
	if err != nil {
		return false, ErrorInvalidParameter
	}
	pKey, err := argPtr(key)
	if err != nil {
		return false, ErrorInvalidParameter
	}
	pValue, err := argPtr(value)
	if err != nil {
		return false, ErrorInvalidParameter
	}
	pPath, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, ErrorInvalidParameter
	}
	ok, errno := callWithLastError(procWritePrivateProfileStringW,
		uintptr(unsafe.Pointer(pSection)),
		uintptr(unsafe.Pointer(pKey)),
		uintptr(unsafe.Pointer(pValue)),
		uintptr(unsafe.Pointer(pPath)),
	)
	return ok != 0, errno
}

// argPtr converts an optional argument to a NUL-terminated UTF-16 pointer,
// or nil if the argument is absent.
func argPtr(a Arg) (*uint16, error) {
	if !a.Valid {
		return nil, nil
	}
	return windows.UTF16PtrFromString(a.Value)
}

// callWithLastError clears the thread's last error, calls proc, and returns
// its result along with the last error it left behind. The goroutine is
// locked to its thread so both calls see the same last error.
func callWithLastError(proc *windows.LazyProc, args ...uintptr) (uintptr, Errno) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	procSetLastError.Call(0)
	r, _, lastErr := proc.Call(args...)
	errno, _ := lastErr.(windows.Errno)
	return r, Errno(errno)
}
