package activesupport

type Initializer interface {
	Initialize() error
}

func IsBlank(value interface{}) bool {
	switch value := value.(type) {
	case nil:
		return true
	case string:
		return String(value).IsBlank()
	case String:
		return value.IsBlank()
	case []rune:
		return String(string(value)).IsBlank()
	case []byte:
		return String(string(value)).IsBlank()
	default:
		return false
	}
}
