package gost3411

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	"testing"
)

func TestEmptyMessageVectors(t *testing.T) {
	want512 := "8e945da209aa869f0455928529bcae4679e9873ab707b55315f56ceb98bef0a7362f715528356ee83cda5f2aac4c6ad2ba3a715c1bcd81cb8e9f90bf4c1c1a8a"
	want256 := "3f539a213e97c802cc229d474c6aa32a825a360b2a933a949fd925208d9ce1bb"

	got512 := hex.EncodeToString(Hash(nil, Size512))
	if got512 != want512 {
		t.Errorf("Hash(nil, 512) = %s, want %s", got512, want512)
	}

	got256 := hex.EncodeToString(Hash(nil, Size256))
	if got256 != want256 {
		t.Errorf("Hash(nil, 256) = %s, want %s", got256, want256)
	}
}

func TestDigest256And512AreIndependent(t *testing.T) {
	msg := []byte("the quick brown fox jumps over the lazy dog")
	d512 := Hash(msg, Size512)
	d256 := Hash(msg, Size256)
	if bytes.Equal(d512[:32], d256) {
		t.Errorf("digest256 should not equal the truncation of digest512; IVs differ")
	}
}

func TestStage3MatchesSingleShotForShortMessages(t *testing.T) {
	msg := bytes.Repeat([]byte{0x5a}, 64)
	for n := 0; n <= 64; n++ {
		oneShot := Hash(msg[:n], Size512)

		d := NewDigest(Size512)
		d.Write(msg[:n])
		d.Finalize()
		staged := d.Digest()

		if !bytes.Equal(oneShot, staged) {
			t.Errorf("length %d: one-shot and staged digests differ", n)
		}
	}
}

func TestPaddingBoundaryNoOffByOne(t *testing.T) {
	m63 := bytes.Repeat([]byte{0x11}, 63)
	m64 := append(append([]byte{}, m63...), 0x00)

	d63 := Hash(m63, Size512)
	d64 := Hash(m64, Size512)

	if bytes.Equal(d63, d64) {
		t.Errorf("hash(M) and hash(M||0x00) must differ for |M|=63")
	}
}

type katVector struct {
	Bits int    `json:"bits"`
	In   string `json:"in"`
	Out  string `json:"out"`
}

func TestKnownAnswerVectors(t *testing.T) {
	raw, err := ioutil.ReadFile("testdata/streebog-kat.json")
	if err != nil {
		t.Skip("no testdata/streebog-kat.json present")
	}
	var vectors []katVector
	if err := json.Unmarshal(raw, &vectors); err != nil {
		t.Fatal(err)
	}
	for _, v := range vectors {
		input, err := hex.DecodeString(v.In)
		if err != nil {
			t.Errorf("bad input hex in vector: %v", err)
			continue
		}
		want, err := hex.DecodeString(v.Out)
		if err != nil {
			t.Errorf("bad output hex in vector: %v", err)
			continue
		}
		got := Hash(input, v.Bits)
		if !bytes.Equal(got, want) {
			t.Errorf("Hash(%q, %d) = %x, want %x", v.In, v.Bits, got, want)
		}
	}
}

func TestWriteAfterFinalizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic writing to a finalized Digest")
		}
	}()
	d := NewDigest(Size512)
	d.Finalize()
	d.Write([]byte("oops"))
}

func TestDigestBeforeFinalizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic calling Digest before Finalize")
		}
	}()
	d := NewDigest(Size512)
	d.Digest()
}

func TestNewDigestRejectsBadSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for an invalid digest size")
		}
	}()
	NewDigest(384)
}

func TestStreamingIdentityAcrossChunkSizes(t *testing.T) {
	msg := make([]byte, 1<<20)
	for i := range msg {
		msg[i] = byte(i * 2654435761 >> 16)
	}

	oneShot := Hash(msg, Size512)

	chunked := func(chunk int) []byte {
		d := NewDigest(Size512)
		for off := 0; off < len(msg); off += chunk {
			end := off + chunk
			if end > len(msg) {
				end = len(msg)
			}
			d.Write(msg[off:end])
		}
		d.Finalize()
		return d.Digest()
	}

	if got := chunked(64); !bytes.Equal(got, oneShot) {
		t.Errorf("64-byte chunked digest differs from one-shot")
	}
	if got := chunked(1); !bytes.Equal(got, oneShot) {
		t.Errorf("1-byte chunked digest differs from one-shot")
	}

	d := NewDigest(Size512)
	d.Write(msg)
	d.Finalize()
	if got := d.Digest(); !bytes.Equal(got, oneShot) {
		t.Errorf("single full-buffer update differs from one-shot")
	}
}

func TestBoundaryBlockCounts(t *testing.T) {
	lengths := []int{0, 1, 63, 64, 65, 127, 128, 511, 512, 513}
	msg := make([]byte, 513)
	for i := range msg {
		msg[i] = byte(i)
	}

	for _, n := range lengths {
		want := Hash(msg[:n], Size512)

		d := NewDigest(Size512)
		for off := 0; off < n; off += 7 {
			end := off + 7
			if end > n {
				end = n
			}
			d.Write(msg[off:end])
		}
		d.Finalize()
		if got := d.Digest(); !bytes.Equal(got, want) {
			t.Errorf("length %d: chunked-by-7 digest differs from one-shot", n)
		}
	}
}
