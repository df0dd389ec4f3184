package utils

import "encoding/json"

// PrettyJSON serializa um valor com indentação, para logs de depuração.
func PrettyJSON(in any) string {
	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		return ""
	}

	return string(buffer)
}
