package lenient

//casegen:case 1; "first"
//go:noinline
//casegen:case 2; "second"
func misordered(n int) {}
