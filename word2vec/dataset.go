package word2vec

/*
Dataset is a column-oriented container of raw samples.

The trainer consumes a dataset with exactly one text column whose rows are the
raw sentences of the corpus.
*/
type Dataset struct {
	columns [][]string
}

/*
NewTextDataset creates a single-column dataset from raw sentences
*/
func NewTextDataset(sentences []string) *Dataset {
	return &Dataset{
		columns: [][]string{sentences},
	}
}

/*
NewDataset creates a dataset from column-major string data
*/
func NewDataset(columns [][]string) *Dataset {
	return &Dataset{
		columns: columns,
	}
}

/*
Rows returns the number of samples in the dataset
*/
func (d *Dataset) Rows() int {
	if len(d.columns) == 0 {
		return 0
	}
	return len(d.columns[0])
}

/*
Columns returns the number of feature columns in the dataset
*/
func (d *Dataset) Columns() int {
	return len(d.columns)
}

/*
Column returns a single feature column as a sequence of strings
*/
func (d *Dataset) Column(index int) []string {
	return d.columns[index]
}
