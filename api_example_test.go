package frost_test

import (
	"fmt"

	"github.com/cryptix-network/frost"
)

func ExampleHash() {
	d := frost.Hash([]byte("some data"))

	fmt.Println(d)
	//output:
	// 432ca922995e26484d60d9f50dd24128319ced415fc15e00f2d9213db6bb7fca85ea9cb510ef7acf202a81f57d2ae274635a5d301084616984d68bd6e9a5c4c5
}

func ExampleHash_blocks() {
	// each block is padded on its own, so these differ
	fmt.Println(frost.Hash([]byte("ab"), []byte("cd")))
	fmt.Println(frost.Hash([]byte("abcd")))
	//output:
	// f1f1ab0dcdce1c20bc2ff66c64412fd35b4bac414e2149b1b9031b742b402178483040366b36a37ffdef8000ca50aa698c4d9bfe522fe95e45ec695ec95e16c6
	// 72fa844ae74354e786063503c632b8107629d0073dd0b0982030dc640f93c7d7ec6ab1d26610e6090b6bfb92587041c61b808cb5fc113c62451c2f77e42a300d
}

func ExampleSum512() {
	fmt.Printf("%x\n", frost.Sum512([]byte("frost")))
	//output:
	// a9650d71e6a0ba86b976e7dd2d82b35abf6685b39294d42d61b2ceac0f3a687aeb9195932cbf0e9ad85cd62860cf96b2e1282ff42833a225bd4fc4ee2a422982
}

func ExampleDigest_DiffBits() {
	a := frost.Hash([]byte("hello world"))
	b := frost.Hash([]byte("iello world"))

	fmt.Println(a.DiffBits(b))
	//output:
	// 270
}
