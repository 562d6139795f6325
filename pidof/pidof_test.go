package pidof

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindByNameEmpty(t *testing.T) {
	_, err := FindByName("")
	assert.Error(t, err)
}

func TestFindByNameMissing(t *testing.T) {
	_, err := FindByName("no-such-process-zzqq-12345")
	assert.ErrorIs(t, err, ErrNotFound)
}
