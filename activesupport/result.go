package activesupport

type Res interface {
	Ok() interface{}
	Err() error
	IsErr() bool
}

type res struct {
	ok  interface{}
	err error
}

func (r res) Ok() interface{} {
	if r.err != nil {
		return nil
	}
	return r.ok
}

func (r res) Err() error {
	return r.err
}

func (r res) IsErr() bool {
	return r.err != nil
}

// Result wraps a (value, error) pair, the common shape of Go call
// results, into a single value.
func Result(val interface{}, err error) Res {
	return res{ok: val, err: err}
}

func Ok(val interface{}) Res {
	return res{ok: val}
}

func Err(err error) Res {
	return res{err: err}
}
