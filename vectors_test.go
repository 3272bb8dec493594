package frost

import (
	"bytes"
	"strings"
)

type vector struct {
	name   string
	blocks [][]byte
	hash   string
}

func seq(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i % 251)
	}
	return out
}

func one(s string) [][]byte { return [][]byte{[]byte(s)} }

var vectors = []vector{
	{
		name:   "NoBlocks",
		blocks: nil,
		hash:   strings.Repeat("0", 128),
	},
	{
		name:   "Empty",
		blocks: one(""),
		hash:   "6c340fe05e84a4e42803a6309f246dc8cbb82382ce3d0e8493483a86ba82562d72c55433651eb3dcd83188e9ba1c49a0c2fb2a76eaf69ad83c93773131daafab",
	},
	{
		name:   "Short",
		blocks: one("short"),
		hash:   "a52a7ad5e51abeed6017510a633f81458b61b80b1af629626dd1360dad89408c64389a8ef05ad407e1d40bccc30abdcfadc9fdd1fb84d82037406b640ca4146a",
	},
	{
		name:   "Medium",
		blocks: one("some medium length data"),
		hash:   "c5973f7e3688288d53de475fe6df190532ad692437aec919b230bc04e5c36b5bc82dee8fdc13728b1dcbc4b74e2f0c2a78039068b6336be833951bea5744ab7a",
	},
	{
		name:   "Long",
		blocks: one("this is a longer input data to test the hash function with multiple rounds"),
		hash:   "4e22f74bf7f6ab0da2501edcfa82a2c193e4c939633c672048c796327f3fcbf6aa545c3156a25f22abf2392d8e978edaa1848d8eaf2fcf7767606d4b5fe0b535",
	},
	{
		name:   "Determinism",
		blocks: one("determinism_test_input_data"),
		hash:   "c453cf3a29036c846baf76c88e20e3b0d61dc956e315c02f725ae0d46905f3a8486724dc56a7c1091633b8c152c952d8884371a8e1ad2b90d2b76c86ba81b3ce",
	},
	{
		name:   "HelloWorld",
		blocks: one("hello world"),
		hash:   "c5c19c113d2db8b69e60c7776a270dc290321ebd856effccc9758b8b97194225ccac16bc1fb92b1a5d9d686cc4ecd19500f1d1793f27054a2bdff3e27baf04dd",
	},
	{
		name:   "Four",
		blocks: one("abcd"),
		hash:   "72fa844ae74354e786063503c632b8107629d0073dd0b0982030dc640f93c7d7ec6ab1d26610e6090b6bfb92587041c61b808cb5fc113c62451c2f77e42a300d",
	},
	{
		name:   "Seven",
		blocks: one("abcdefg"),
		hash:   "f72594f2558297909cbe018a568669cf3f029e07e5642d7b8a0446395b69136a68b4f2ce632a838d2a981ac40c6318b40dcc58f4b5bc44f18624a2e76ea4e269",
	},
	{
		name:   "Eight",
		blocks: one("abcdefgh"),
		hash:   "a802877d9a92403c61cba7385204a7bcc619966eccada5ebb5ef91d92ed71f8cb0145a6941211490f5f06ddc3d98cc0b8912f2db33b388ed171cbe86f7f64006",
	},
	{
		name:   "Zeros1000",
		blocks: [][]byte{make([]byte, 1000)},
		hash:   "85a23a9daf0f2762d7b2f2f0488209090e280ccd1d3d7daa2d01c329d038c2b7053c3ee576dfefa16fb7eaa7a004a8bbbf97bc458791646e226a173400b39461",
	},
	{
		name:   "Seq100",
		blocks: [][]byte{seq(100)},
		hash:   "fd1ef1d0106fa7a54343fe17d00ddda6c0f70145f44d845873405711def9f6c17e372b6d5ded2406a2cf0bcdcb79c61ffda2f0aff44cd9a69a5527be5f4340dd",
	},
	{
		name:   "Fill64K",
		blocks: [][]byte{bytes.Repeat([]byte{0x55}, 1<<16)},
		hash:   "73ac36b6a6225b7064831ff0a4abeec0a4ae8647bca00f8eddd373befc7e6d072827c960fc3d0ceb2eb353acd00e2568c5d093127197cc6500b497d2f0ba7a3e",
	},
	{
		name:   "TwoBlocks",
		blocks: [][]byte{[]byte("ab"), []byte("cd")},
		hash:   "f1f1ab0dcdce1c20bc2ff66c64412fd35b4bac414e2149b1b9031b742b402178483040366b36a37ffdef8000ca50aa698c4d9bfe522fe95e45ec695ec95e16c6",
	},
	{
		name:   "TwoEmptyBlocks",
		blocks: [][]byte{{}, {}},
		hash:   "0995d1540fb3f496d2587a0daae8ce050f78834ebaed7a51e858111d98cfd4378c4ffe4cb85db2d0941c238eb11029fadb5cc0a72e96dc8db0952e46af7dc34c",
	},
}
