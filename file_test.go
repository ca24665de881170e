package mmser

import (
	"path/filepath"
	"testing"
)

func TestFileSaveLoadCrossProduct(t *testing.T) {
	savers := map[string]func(path string, v *WithVector, opt Options) error{
		"copy":   SaveFileCopy[WithVector],
		"stream": SaveFileStream[WithVector],
		"map":    SaveFileMap[WithVector],
	}
	loaders := map[string]func(path string, opt Options) (*WithVector, Storage, error){
		"copy":   LoadFileCopy[WithVector],
		"stream": LoadFileStream[WithVector],
		"map":    LoadFileMap[WithVector],
	}

	for saveName, save := range savers {
		for loadName, load := range loaders {
			t.Run(saveName+"_"+loadName, func(t *testing.T) {
				dir := t.TempDir()
				path := filepath.Join(dir, "data.mmser")

				want := &WithVector{Tag: 42, Data: NewVectorFilled[uint64](16, 9)}
				if err := save(path, want, Options{}); err != nil {
					t.Fatalf("save: %v", err)
				}

				got, st, err := load(path, Options{})
				if err != nil {
					t.Fatalf("load: %v", err)
				}
				defer st.Close()

				if got.Tag != want.Tag || got.Data.Len() != want.Data.Len() {
					t.Fatalf("got %+v, want Tag=%d Len=%d", *got, want.Tag, want.Data.Len())
				}
				for i := 0; i < got.Data.Len(); i++ {
					if got.Data.At(i) != 9 {
						t.Fatalf("Data[%d] = %d, want 9", i, got.Data.At(i))
					}
				}
			})
		}
	}
}

func TestSaveFileStreamStringRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "str.mmser")

	want := &WithString{Name: "streamed through a file", ID: 3}
	if err := SaveFileStream(path, want, Options{}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, st, err := LoadFileStream[WithString](path, Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer st.Close()
	if got.Name != want.Name || got.ID != want.ID {
		t.Fatalf("got %+v, want %+v", *got, *want)
	}
}

func TestLoadFileMapEmptyVector(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.mmser")

	want := &WithVector{Tag: 1, Data: NewVector[uint64](0)}
	if err := SaveFileCopy(path, want, Options{}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, st, err := LoadFileMap[WithVector](path, Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer st.Close()
	if got.Data.Len() != 0 {
		t.Fatalf("Data.Len() = %d, want 0", got.Data.Len())
	}
}
