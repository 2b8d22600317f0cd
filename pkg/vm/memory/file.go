// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package memory

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/consensys/go-esolang/pkg/vm/codec"
	pkgErrors "github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// File is a persistent implementation of Memory, backed by a file on disk.  To
// speed up reads, these go through a read-only memory map of the file.  Writes,
// on the other hand, go through the file descriptor and the memory map is
// re-established whenever a write extends the file.  Every operation addresses
// the file absolutely at the cursor, hence the cursor itself is held in memory.
// Writing beyond the end of the file leaves a hole which reads back as zeros.
type File struct {
	path string
	fd   int
	// Memory map of the file (nil when the file is empty)
	data []byte
	// Size of the file (in bytes)
	size uint64
	pc   uint64
}

// OpenFile opens (or creates) a file to use as memory, with the cursor at
// address zero.
func OpenFile(path string) (*File, error) {
	var stat unix.Stat_t
	//
	fd, err := unix.Open(path, unix.O_CREAT|unix.O_RDWR|unix.O_CLOEXEC, 0666)
	if err != nil {
		return nil, ioFault(err, "failed to open file %#v", path)
	}
	//
	if err := unix.Fstat(fd, &stat); err != nil {
		_ = unix.Close(fd)
		return nil, ioFault(err, "failed to obtain size of file %#v", path)
	}
	//
	file := &File{path: path, fd: fd}
	//
	if err := file.remap(uint64(stat.Size)); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}
	//
	return file, nil
}

// Path returns the path of the underlying file.
func (p *File) Path() string {
	return p.path
}

// PC implementation for Memory interface.
func (p *File) PC() uint64 {
	return p.pc
}

// Len returns the size of the underlying file.
func (p *File) Len() uint64 {
	return p.size
}

// Fetch implementation for Memory interface.
func (p *File) Fetch(dst []byte) (int, error) {
	var (
		width = uint64(len(dst))
		n     = available(p.pc, p.size)
	)
	//
	if width > n {
		return int(n), codec.ErrUnexpectedEnd
	} else if width == 0 {
		return 0, nil
	}
	//
	m, err := p.readAt(dst, p.pc)
	if err != nil {
		return m, err
	}
	//
	p.pc += width
	//
	return m, nil
}

// Store implementation for Memory interface.
func (p *File) Store(src []byte) error {
	var (
		offset = p.pc
		end    = p.pc + uint64(len(src))
	)
	// The file is only extended by bytes actually written
	if len(src) == 0 {
		return nil
	}
	// The pwrite() system call can perform a short write without reporting an
	// error, hence we must invoke it repeatedly.
	for len(src) > 0 {
		n, err := unix.Pwrite(p.fd, src, int64(offset))
		//
		if err != nil {
			return ioFault(err, "failed to write %d bytes at 0x%x of %#v", len(src), offset, p.path)
		} else if n == 0 {
			return ioFault(io.ErrShortWrite, "failed to write %d bytes at 0x%x of %#v", len(src), offset, p.path)
		}
		//
		src = src[n:]
		offset += uint64(n)
	}
	// Extend the memory map to cover the new end of file.
	if end > p.size {
		return p.remap(end)
	}
	//
	return nil
}

// Seek implementation for Memory interface.
func (p *File) Seek(offset codec.Offset) error {
	pc, err := displace(p.pc, offset)
	//
	p.pc = pc
	//
	return err
}

// Contents implementation for Memory interface.  This returns a copy of the
// file contents.
func (p *File) Contents() ([]byte, error) {
	var bytes = make([]byte, p.size)
	//
	if _, err := p.readAt(bytes, 0); err != nil {
		return nil, err
	}
	//
	return bytes, nil
}

// Sync flushes the file's in-core state to the storage device.
func (p *File) Sync() error {
	if err := unix.Fsync(p.fd); err != nil {
		return ioFault(err, "failed to sync %#v", p.path)
	}
	//
	return nil
}

// Close the underlying file, after which this memory can no longer be used.
func (p *File) Close() error {
	if p.data != nil {
		if err := unix.Munmap(p.data); err != nil {
			return ioFault(err, "failed to unmap %#v", p.path)
		}
		//
		p.data = nil
	}
	//
	if err := unix.Close(p.fd); err != nil {
		return ioFault(err, "failed to close %#v", p.path)
	}
	//
	return nil
}

// readAt reads through the memory map at a given offset.  A page fault handler
// is installed for the duration, so that I/O errors against the memory map
// (e.g. due to the file being truncated elsewhere) are reported rather than
// crashing.
func (p *File) readAt(dst []byte, offset uint64) (n int, err error) {
	old := debug.SetPanicOnFault(true)
	defer func() {
		debug.SetPanicOnFault(old)
		//
		if recover() != nil {
			n = 0
			err = fmt.Errorf("%w: page fault occurred while reading %#v", ErrIO, p.path)
		}
	}()
	//
	return copy(dst, p.data[offset:]), nil
}

// remap discards the current memory map (if any) and maps the first size bytes
// of the file.
func (p *File) remap(size uint64) error {
	if p.data != nil {
		if err := unix.Munmap(p.data); err != nil {
			return ioFault(err, "failed to unmap %#v", p.path)
		}
		//
		p.data = nil
	}
	//
	p.size = size
	// Empty mappings are not permitted
	if size == 0 {
		return nil
	}
	//
	data, err := unix.Mmap(p.fd, 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return ioFault(err, "failed to memory map %#v", p.path)
	}
	//
	p.data = data
	//
	return nil
}

// ioFault wraps an error arising from the operating system such that it can be
// identified as ErrIO, whilst retaining the original cause.
func ioFault(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %w", ErrIO, pkgErrors.Wrapf(err, format, args...))
}
