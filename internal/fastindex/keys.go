package fastindex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/labelworks/annoqueue/internal/common"
)

const (
	queueKeyPrefix = "queue:"
	dataValPrefix  = "data:"
)

// QueueKey serializes a queue id for the index store. Format: "queue:<id>".
func QueueKey(queueID int) string {
	return queueKeyPrefix + strconv.Itoa(queueID)
}

// DataValue serializes a data id as a list element. Format: "data:<id>".
func DataValue(dataID int) string {
	return dataValPrefix + strconv.Itoa(dataID)
}

// ParseQueueKey extracts the queue id from a serialized key.
func ParseQueueKey(key string) (int, error) {
	return parsePrefixed(key, queueKeyPrefix)
}

// ParseDataValue extracts the data id from a serialized list element.
func ParseDataValue(val string) (int, error) {
	return parsePrefixed(val, dataValPrefix)
}

func parsePrefixed(s, prefix string) (int, error) {
	rest, found := strings.CutPrefix(s, prefix)
	if !found {
		return 0, fmt.Errorf("malformed index entry %q: %w", s, common.ErrInvalidInput)
	}
	id, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("malformed index entry %q: %w", s, common.ErrInvalidInput)
	}
	return id, nil
}
