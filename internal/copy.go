package internal

func CopyMap(m map[string]interface{}) map[string]interface{} {
	mout := make(map[string]interface{}, len(m))
	for k, v := range m {
		mout[k] = v
	}
	return mout
}

func CopyStrings(ss []string) []string {
	ssout := make([]string, len(ss))
	copy(ssout, ss)
	return ssout
}
