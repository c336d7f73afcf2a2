package slz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchTable_FirstInsertFindsNothing(t *testing.T) {
	tbl := acquireMatchTable()
	defer releaseMatchTable(tbl)

	_, ok := tbl.lookupAndInsert(0, 0x41424344)
	assert.False(t, ok)
}

func TestMatchTable_RepeatedWordFindsPreviousPosition(t *testing.T) {
	tbl := acquireMatchTable()
	defer releaseMatchTable(tbl)

	const word = 0x11223344
	tbl.lookupAndInsert(10, word)
	prev, ok := tbl.lookupAndInsert(50, word)
	assert.True(t, ok)
	assert.EqualValues(t, 10, prev)
}

func TestMatchTable_DifferentWordSameSlotIsRejected(t *testing.T) {
	tbl := acquireMatchTable()
	defer releaseMatchTable(tbl)

	wordA := uint32(1)
	wordB := wordA // find a collision by brute-forcing the hash index
	for hashIndex(wordB) != hashIndex(wordA) || wordB == wordA {
		wordB++
		if wordB == 0 {
			t.Fatal("failed to find a colliding word")
		}
	}

	tbl.lookupAndInsert(0, wordA)
	_, ok := tbl.lookupAndInsert(1, wordB)
	assert.False(t, ok, "a hash collision on a different word must not report a match")
}

func TestMatchTable_DistanceBeyondWindowIsRejected(t *testing.T) {
	tbl := acquireMatchTable()
	defer releaseMatchTable(tbl)

	const word = 0xaabbccdd
	tbl.lookupAndInsert(0, word)
	_, ok := tbl.lookupAndInsert(maxDistance+1, word)
	assert.False(t, ok)
}

func TestMatchTable_Reset(t *testing.T) {
	tbl := acquireMatchTable()
	tbl.lookupAndInsert(5, 0x99)
	tbl.reset()
	_, ok := tbl.lookupAndInsert(6, 0x99)
	assert.False(t, ok)
	releaseMatchTable(tbl)
}
