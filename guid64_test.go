package guid64

import (
	"encoding/base64"
	"encoding/hex"
	"os"
	"strings"
	"testing"
	"testing/quick"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type byteVector struct {
	Name string `yaml:"name"`
	Hex  string `yaml:"hex"`
	Want string `yaml:"want"`
}

type uuidVector struct {
	UUID string `yaml:"uuid"`
	GUID string `yaml:"guid"`
	RFC  string `yaml:"rfc"`
}

type vectors struct {
	Bytes []byteVector `yaml:"bytes"`
	UUIDs []uuidVector `yaml:"uuids"`
}

func loadVectors(t *testing.T) vectors {
	t.Helper()
	data, err := os.ReadFile("testdata/vectors.yaml")
	require.NoError(t, err)
	var v vectors
	require.NoError(t, yaml.Unmarshal(data, &v))
	require.NotEmpty(t, v.Bytes)
	require.NotEmpty(t, v.UUIDs)
	return v
}

// original process: standard alphabet, swap the two unsafe characters,
// drop the padding
func original(id [Size]byte) string {
	s := base64.StdEncoding.EncodeToString(id[:])
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "+", "_")
	return strings.ReplaceAll(s, "=", "")
}

func randomID(t testing.TB) [Size]byte {
	u, err := uuid.NewRandom()
	require.NoError(t, err)
	return GUIDBytes(u)
}

func TestVectors(t *testing.T) {
	v := loadVectors(t)
	for _, tc := range v.Bytes {
		t.Run(tc.Name, func(t *testing.T) {
			raw, err := hex.DecodeString(tc.Hex)
			require.NoError(t, err)
			id := [Size]byte(raw)
			require.Equal(t, tc.Want, original(id))
			for _, variant := range Variants() {
				require.Equal(t, tc.Want, variant.Encode(id), variant.Name)
			}
		})
	}
}

func TestVariantsMatchOriginal(t *testing.T) {
	for _, variant := range Variants() {
		t.Run(variant.Name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				id := randomID(t)
				require.Equal(t, original(id), variant.Encode(id))
			}
		})
	}
}

func TestVariantsQuick(t *testing.T) {
	for _, variant := range Variants() {
		condition := func(id [Size]byte) bool {
			return variant.Encode(id) == original(id)
		}
		err := quick.Check(condition, &quick.Config{MaxCount: 1000})
		require.NoError(t, err, variant.Name)
	}
}

func TestEncodeShape(t *testing.T) {
	inputs := [][Size]byte{{}, {0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}}
	for i := 0; i < 200; i++ {
		inputs = append(inputs, randomID(t))
	}
	for _, id := range inputs {
		s := Encode(id)
		require.Len(t, s, EncodedLen)
		require.NotContainsf(t, s, "+", "%x", id)
		require.NotContainsf(t, s, "/", "%x", id)
		require.NotContainsf(t, s, "=", "%x", id)
		for i := 0; i < len(s); i++ {
			require.Truef(t, strings.IndexByte(Alphabet, s[i]) >= 0, "%q in %q", s[i], s)
		}
		require.Equal(t, s, Encode(id))
	}
}

func TestEncodeInjective(t *testing.T) {
	seen := make(map[string][Size]byte, 10000)
	for i := 0; i < 10000; i++ {
		id := randomID(t)
		s := Encode(id)
		if prev, ok := seen[s]; ok {
			require.Equal(t, prev, id, "distinct identifiers share %q", s)
		}
		seen[s] = id
	}
}

func TestEncodeBytes(t *testing.T) {
	id := randomID(t)
	s, err := EncodeBytes(id[:])
	require.NoError(t, err)
	require.Equal(t, Encode(id), s)

	for _, n := range []int{0, 1, 15, 17, 24} {
		s, err := EncodeBytes(make([]byte, n))
		require.ErrorIs(t, err, ErrInvalidLength)
		require.Empty(t, s)
	}
	_, err = EncodeBytes(nil)
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestPutAndAppend(t *testing.T) {
	id := randomID(t)
	var dst [EncodedLen]byte
	Put(&dst, &id)
	require.Equal(t, Encode(id), string(dst[:]))

	prefix := []byte("id=")
	out := AppendEncode(prefix, id)
	require.Equal(t, "id="+Encode(id), string(out))

	var batch []byte
	ids := [][Size]byte{randomID(t), randomID(t), randomID(t)}
	for _, id := range ids {
		batch = AppendEncode(batch, id)
	}
	require.Len(t, batch, len(ids)*EncodedLen)
	for i, id := range ids {
		assert.Equal(t, Encode(id), string(batch[i*EncodedLen:(i+1)*EncodedLen]))
	}
}

func TestLookup(t *testing.T) {
	for _, want := range Variants() {
		got, err := Lookup(want.Name)
		require.NoError(t, err)
		require.Equal(t, want.Name, got.Name)
	}
	_, err := Lookup("unrolled")
	require.ErrorIs(t, err, ErrUnknownVariant)

	names := make([]string, 0, 4)
	for _, v := range Variants() {
		names = append(names, v.Name)
	}
	require.Equal(t, []string{"reference", "substitute", "direct", "reverse"}, names)
}

func TestUUIDVectors(t *testing.T) {
	v := loadVectors(t)
	for _, tc := range v.UUIDs {
		u := uuid.MustParse(tc.UUID)
		require.Equal(t, tc.GUID, EncodeUUID(u), tc.UUID)
		require.Equal(t, tc.RFC, EncodeRFC(u), tc.UUID)
	}
}

func TestGUIDBytes(t *testing.T) {
	u := uuid.MustParse("00112233-4455-6677-8899-aabbccddeeff")
	got := GUIDBytes(u)
	want, err := hex.DecodeString("33221100554477668899aabbccddeeff")
	require.NoError(t, err)
	require.Equal(t, want, got[:])
}

func TestNew(t *testing.T) {
	s, u, err := New()
	require.NoError(t, err)
	require.Equal(t, uuid.Version(4), u.Version())
	require.Equal(t, EncodeUUID(u), s)
	require.Len(t, s, EncodedLen)
}

func FuzzEncode(f *testing.F) {
	f.Add(make([]byte, Size))
	f.Add([]byte("0123456789abcdef"))
	f.Fuzz(func(t *testing.T, b []byte) {
		s, err := EncodeBytes(b)
		if len(b) != Size {
			require.ErrorIs(t, err, ErrInvalidLength)
			return
		}
		require.NoError(t, err)
		id := [Size]byte(b)
		require.Equal(t, original(id), s)
		require.Equal(t, s, EncodeReverse(id))
		require.Equal(t, s, EncodeSubstitute(id))
	})
}
