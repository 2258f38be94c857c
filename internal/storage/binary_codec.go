package storage

import (
	"bufio"
	"bytes"
	"cdinv/internal/inventory"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Binary layout, big-endian:
//
//	header: "CDIV" | version uint8 | count uint32
//	record: id int64 | titleLen uint32 | title | artistLen uint32 | artist
var binaryMagic = [4]byte{'C', 'D', 'I', 'V'}

const (
	binaryVersion   = 1
	maxFieldLen     = 1 << 20
	preallocRecords = 1024
)

type BinaryCodec struct{}

func (BinaryCodec) Encode(w io.Writer, records []inventory.Record) error {
	if uint64(len(records)) > math.MaxUint32 {
		return fmt.Errorf("too many records: %d", len(records))
	}

	bw := bufio.NewWriter(w)
	header := make([]byte, 0, 9)
	header = append(header, binaryMagic[:]...)
	header = append(header, binaryVersion)
	header = binary.BigEndian.AppendUint32(header, uint32(len(records)))
	if _, err := bw.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		if err := writeRecord(bw, r); err != nil {
			return fmt.Errorf("record %d: %w", r.ID, err)
		}
	}
	return bw.Flush()
}

func writeRecord(w io.Writer, r inventory.Record) error {
	buf := binary.BigEndian.AppendUint64(nil, uint64(int64(r.ID)))
	for _, field := range []string{r.Title, r.Artist} {
		if len(field) > maxFieldLen {
			return fmt.Errorf("field exceeds %d bytes", maxFieldLen)
		}
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(field)))
		buf = append(buf, field...)
	}
	_, err := w.Write(buf)
	return err
}

func (BinaryCodec) Decode(r io.Reader) ([]inventory.Record, error) {
	br := bufio.NewReader(r)

	header := make([]byte, 9)
	n, err := io.ReadFull(br, header)
	if errors.Is(err, io.EOF) && n == 0 {
		return []inventory.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if !bytes.Equal(header[:4], binaryMagic[:]) {
		return nil, fmt.Errorf("bad magic %q", header[:4])
	}
	if header[4] != binaryVersion {
		return nil, fmt.Errorf("unsupported format version %d", header[4])
	}

	count := binary.BigEndian.Uint32(header[5:9])
	records := make([]inventory.Record, 0, min(int(count), preallocRecords))
	for i := range count {
		rec, err := readRecord(br)
		if err != nil {
			return nil, fmt.Errorf("record %d of %d: %w", i+1, count, err)
		}
		records = append(records, rec)
	}

	if _, err := br.ReadByte(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after last record")
	}
	return records, nil
}

func readRecord(r io.Reader) (inventory.Record, error) {
	var idBuf [8]byte
	if _, err := io.ReadFull(r, idBuf[:]); err != nil {
		return inventory.Record{}, unexpected(err)
	}
	id := int64(binary.BigEndian.Uint64(idBuf[:]))
	if id < math.MinInt || id > math.MaxInt {
		return inventory.Record{}, fmt.Errorf("id %d out of range", id)
	}

	title, err := readString(r)
	if err != nil {
		return inventory.Record{}, fmt.Errorf("title: %w", err)
	}
	artist, err := readString(r)
	if err != nil {
		return inventory.Record{}, fmt.Errorf("artist: %w", err)
	}
	return inventory.NewRecord(int(id), title, artist), nil
}

func readString(r io.Reader) (string, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return "", unexpected(err)
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	if n > maxFieldLen {
		return "", fmt.Errorf("length %d exceeds %d bytes", n, maxFieldLen)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", unexpected(err)
	}
	return string(buf), nil
}

// unexpected maps a clean EOF in the middle of a record to ErrUnexpectedEOF.
func unexpected(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
