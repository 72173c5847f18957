package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackStringsNilBecomesEmptyArray(t *testing.T) {
	s, err := packStrings(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", s)
}

func TestPackUnpackRoundTrip(t *testing.T) {
	in := []string{"fast", "scenic", "weather dependent"}
	packed, err := packStrings(in)
	require.NoError(t, err)
	assert.Equal(t, in, unpackStrings(packed))
}

func TestUnpackStringsGarbage(t *testing.T) {
	assert.Empty(t, unpackStrings(""))
	assert.Empty(t, unpackStrings("not json"))
	assert.Empty(t, unpackStrings("{\"a\":1}"))
}

func TestDatasetCount(t *testing.T) {
	ds := &TransportationDataset{
		TransferTypes: []*TransferType{{}, {}},
		AtollTransfers: []*AtollTransfer{
			{Resorts: []*ResortTransfer{{}, {}, {}}},
			{},
		},
		FAQs:           []*TransferFAQ{{}},
		ContactMethods: []*SectionItem{{}},
		Content:        []*SectionItem{{}, {}},
		FerrySchedules: []*FerrySchedule{{}},
	}
	// 2 types + 2 atolls + 3 resorts + 1 faq + 1 contact + 2 content + 1 ferry
	assert.Equal(t, 12, ds.Count())
}
