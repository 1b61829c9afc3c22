package hdf5

import (
	"fmt"

	"github.com/sbinet/go-hdf5"
)

// LoadPoints reads a one-dimensional dataset of (X, Y) compounds from an
// HDF5 file. The driver command uses it to place foodspots recorded by an
// earlier run or produced by external tooling.
func LoadPoints(filepath, dataset string) (pts []Point, err error) {
	file, err := hdf5.OpenFile(filepath, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, err
	}
	defer checkClose(&err, file)

	dset, err := file.OpenDataset(dataset)
	if err != nil {
		return nil, err
	}
	defer checkClose(&err, dset)

	space := dset.Space()
	dims, _, err := space.SimpleExtentDims()
	if err != nil {
		return nil, err
	}
	if len(dims) != 1 {
		return nil, fmt.Errorf("hdf5: dataset %q has %d dimensions, want 1", dataset, len(dims))
	}

	pts = make([]Point, dims[0])
	if err := dset.Read(&pts); err != nil {
		return nil, err
	}
	return pts, nil
}
