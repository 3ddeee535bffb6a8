package common

import (
	"encoding/json"
	"os"

	uuid "github.com/satori/go.uuid"
)

func GetUniqueIDFromUUID() string {
	return uuid.Must(uuid.NewV1(), nil).String()
}

func GetENVValue(key, defaultValue string) (v string) {
	var found bool
	if v, found = os.LookupEnv(key); !found {
		return defaultValue
	}

	return
}

//
// Function to wrap calls to `json.Unmarshall` that cannot fail
//
// This function should only be used when doing calls that cannot fails,
// e.g. re-reading a value which was serialized by agora itself.
// It ensures no silent corruption of data can happen
func MustUnmarshalJSON(data []byte, v interface{}) {
	if err := json.Unmarshal(data, v); err != nil {
		panic(err)
	}
}

func MustMarshalJSON(o interface{}) []byte {
	b, _ := json.Marshal(o)
	return b
}

func JSONMarshalIndent(o interface{}) ([]byte, error) {
	return json.MarshalIndent(o, "", "  ")
}
