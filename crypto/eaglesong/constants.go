// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package eaglesong

// injectionConstants holds the 43x16 per-round injection words.
var injectionConstants = [rounds * stateWords]uint32{
	0x77f1ae8b, 0x063d1cfb, 0x11e7eb6a, 0x7dd178cf, 0x0bde84cb, 0xb3b6a468, 0x80496955, 0x01106364,
	0xa2e05e9a, 0x8f5a0a63, 0x0cd7a068, 0xe3815ca5, 0xcaa68d4f, 0x7ae379c8, 0xae941785, 0xa0f09757,
	0xf15fe51a, 0xb268df64, 0x99057f66, 0xebdd2652, 0xadff7af9, 0x16af0e89, 0x18b4f3f6, 0x5f8462f3,
	0xa89708de, 0x78116f18, 0xebbaf9c1, 0x24d2f380, 0x2efb14f1, 0xc0c74aa3, 0x1bf4f32a, 0x37afcda2,
	0x0d66bf4f, 0x8b697308, 0x040c100c, 0x47b7b24a, 0x8e2bfc15, 0xc48dbce1, 0x11250849, 0xb5a27bbf,
	0xa0693c75, 0x7b1c2f46, 0x206697bc, 0xa0bcb074, 0xe0f74e8d, 0x2dfba9de, 0x40c8f27e, 0x8e64ba9d,
	0x3fd5d6c6, 0x24a7dc40, 0x3ad9c937, 0x7c1a31c8, 0x7e46b7f9, 0xbf81b705, 0xa54b2515, 0xfcd559c1,
	0xaa4714d7, 0x5367c799, 0xd902f833, 0x469fbd11, 0x9685746f, 0x3919850b, 0x3ea4db37, 0x1d8f5316,
	0x0a50f4e0, 0x8d532e46, 0xfbe8db6b, 0xf03cae09, 0xda4a2217, 0x5f192f73, 0x24193308, 0x4d7e74b4,
	0xfefe1d40, 0x97967e8b, 0x50a167a8, 0xf6df69c2, 0x6703a211, 0x7b70fd91, 0xfc9f11f0, 0xca82caa0,
	0xe906ea2b, 0xbc31914a, 0x4d0a5e86, 0xdd89208b, 0xca9fb4a7, 0xbd621ee2, 0x297a161d, 0x1c89fbe1,
	0x5d4c897b, 0x4012660a, 0x96b72c03, 0x15d9c698, 0x8c50d3bd, 0x52c02d6e, 0xbad51dd8, 0x34ac3c8f,
	0xd48d2731, 0x7d0cdf84, 0x3979b3ba, 0xeed0739d, 0xf4d7da4c, 0xfc55ede3, 0x7cdc0ff7, 0x5970bda6,
	0x964f0244, 0xb6f091a7, 0x3c405b65, 0xd2b0fe93, 0x613dfc62, 0x088bb47a, 0xbe9da478, 0x48468f51,
	0xac309367, 0x75d9a569, 0x6fe01fb3, 0xeedf7eb8, 0x2007b9bc, 0x313a16a4, 0x0e3b4533, 0xb53fd9dd,
	0x8e8f853f, 0xbb231f4b, 0xc18876ee, 0x25eff9c4, 0x8035814f, 0x33935161, 0x6e54ea7e, 0x90712d93,
	0x0da1f932, 0x6273ae51, 0xe089342d, 0x0792124b, 0xfeb14466, 0x11800078, 0x206e1f5f, 0x93345d3d,
	0x0aeddff4, 0x9373e8dd, 0x236fc2c9, 0xbde76512, 0x79e4bbb0, 0x3ccb53d9, 0x80bb48a1, 0xdc4c92b6,
	0x8d54c2db, 0xb4faa3dc, 0xf0ab201c, 0x01b5a348, 0x0e43cd66, 0x8a09e4b1, 0x656c603e, 0xc41145eb,
	0x7926241d, 0x091e832f, 0xf61afdd2, 0x9dbdc942, 0xb626fa08, 0x459e19db, 0x52026ba9, 0xf19fc652,
	0x23e5ddf8, 0x9308ab75, 0x4aaf4086, 0xf545eaf9, 0x4b473074, 0x04753cd0, 0xde02c9c7, 0x6077211a,
	0x0ed04530, 0xc8be876b, 0x122e8302, 0x8b9ae685, 0x3e0f8920, 0x2a563815, 0x47c9395f, 0x7cbfccee,
	0x216b819f, 0x7a516f53, 0xa0dfb54e, 0x98bd90d5, 0x7e439546, 0x91813553, 0x524ad606, 0x19c85a23,
	0x430a5fc5, 0x16ad8c3c, 0x4261aa89, 0x91269331, 0x2b52c0b1, 0x1bdffb73, 0x728ccc4b, 0x8bbee0e9,
	0xa3de8c38, 0x396f1794, 0xa822b11a, 0x3e304d5a, 0xc4f9c477, 0x729c13cc, 0xec589c7e, 0x05335135,
	0x8dad115f, 0xdf5a351c, 0xa6c6c5e0, 0xb125a17d, 0xa44a7cf8, 0x91742b52, 0x97d24afd, 0x0f3d32db,
	0x85a6cb68, 0xc5b744ad, 0x897cb5bc, 0xe6ac7179, 0x78efc238, 0x95b8cfec, 0x04e4300e, 0xde539efc,
	0x1c054f7a, 0x08a0e46f, 0x918cc159, 0x3d5b54ca, 0xaf85da4b, 0x8d5ab58d, 0xa6847778, 0x25070aed,
	0x4f03d0c0, 0x966283ed, 0x05f75ca2, 0x220e19f3, 0xc731240b, 0x95b68fb3, 0xcc597ff3, 0x974aaa20,
	0x83d7afc7, 0xb3c1eed0, 0x4d6e927d, 0x7b0ec04d, 0xc3e1080e, 0xbef796be, 0xc82e656e, 0x94f742cf,
	0xe97d0f98, 0x594b503f, 0x5ad99ab9, 0x585f41be, 0xbd73e8ca, 0xcd33d71f, 0x4dddf217, 0x807210d8,
	0x8f474c6c, 0xbf951e29, 0x96563021, 0x5a153908, 0x5bbcb5d2, 0x6dd4f971, 0xadaea18c, 0x4a7cb523,
	0x47cfd2af, 0x0ed7e022, 0xa8a8f02b, 0x6314a4dd, 0x06609c5a, 0xa891034f, 0x97ec4153, 0xe703f8b0,
	0x9aa323fa, 0x255f8e14, 0x4731ef1a, 0x2080dc13, 0x5b5693d2, 0xacbe7fc4, 0x0b9f0287, 0x923d7b60,
	0x977ddcc8, 0xb07d9dfa, 0x7b995f7b, 0x5eb4ff40, 0xeacf622e, 0xd7de8c0b, 0xcda20ba4, 0x160f742f,
	0xe9d7e52a, 0xbb275df3, 0x43bba25f, 0xc9fb6d47, 0x2e2832ae, 0x27c13490, 0x2b35b319, 0x378d6bf2,
	0xc49fb7eb, 0x7e3b159a, 0x8d83201e, 0xd9920f1e, 0x9641e7e6, 0xfd1325b8, 0xad29442a, 0x3024997c,
	0xc26257d9, 0x9bbf4135, 0x00a2c7d9, 0x5360b555, 0xfc8cc1b0, 0xf3e48e4d, 0x278ef43b, 0xd834ff5f,
	0xbc38aab0, 0x84b13ee7, 0xcedc6571, 0x0c3eed48, 0xe36735e3, 0xbeb1b6ce, 0x856e6dba, 0x53f83316,
	0xe6c1e2bb, 0x884b11f0, 0xa4d9fd8a, 0xf676f7fe, 0x39ad54fa, 0xf579f103, 0xa067614f, 0xc59a4a68,
	0x16368c63, 0x30eb787e, 0xa376660c, 0x994deb37, 0xa1483d62, 0x7a61ec10, 0xbb9a33c1, 0x41afcb30,
	0xa1fb7dd4, 0x0672c474, 0x81710a4a, 0xa73b5096, 0x68173642, 0x5539148d, 0x82b96479, 0x68f47f22,
	0x0519d9ea, 0xfab459f8, 0x40e7469d, 0xaea2e267, 0xaf211910, 0x0c68bd31, 0x621c8a16, 0x98984499,
	0x916ebf1c, 0x972e971a, 0xfc734a7c, 0x32ac9ca2, 0x86290bfe, 0x4d8592f5, 0x04b2ee18, 0x774996a0,
	0xf62b39ae, 0xb2c89501, 0xad744395, 0x85d8d3d6, 0x6be9dce7, 0x5ed78f7d, 0x483764c1, 0x314dc456,
	0xb12f5615, 0x2656a783, 0xa67164d0, 0xd78f1505, 0x90da5dd2, 0xb76e7c22, 0x65aa0ab7, 0xbb63e1e9,
	0x2c8aea86, 0x4a985f0b, 0x6e5ae957, 0x5d720d0f, 0x86af8fa6, 0x9c35f56b, 0x718800c7, 0x438bd9ef,
	0x2e729334, 0xfe918afe, 0x360b8e39, 0xbe5d363f, 0x0bc19432, 0x11bedab1, 0x97fb6765, 0x99e0e72e,
	0x25a9d02c, 0xea27a0ba, 0xd82d1be2, 0x117daf0a, 0x370b15c4, 0xe3c45cbd, 0x622ada14, 0x146092a0,
	0xc0a6a6fa, 0x9b447406, 0xad536264, 0xe2efdf8b, 0x3ac8d384, 0x37b038d8, 0x25cf312d, 0xbeb4ebd8,
	0x5a30bddf, 0xfce4185a, 0x8203920d, 0xf80b0fac, 0xa626a933, 0x131ee6d3, 0x3758c711, 0xd8e4e94c,
	0xfc643eea, 0x0c9125f6, 0x2dd1cdc1, 0x99551955, 0x758b292a, 0x05624edd, 0xdb80d8a1, 0xd207858b,
	0x74686ed0, 0x4ff81329, 0xfe3fa907, 0x68f6dd88, 0xdbb7014b, 0x4851ec04, 0xcffb8b6c, 0x6c5cd0c7,
	0x3ecd3745, 0x9c9eb1b7, 0x1fa6e883, 0x946bd2d8, 0x28241dc0, 0xd81549ce, 0x54ba9a58, 0xf9c2ada0,
	0x22a988fb, 0x656ac520, 0x8415a327, 0x3e5a38ff, 0x51f96ffd, 0xfcd8ce3e, 0x46f0ea91, 0x2ffe0f40,
	0x2cd9712b, 0x5d7e1af5, 0x5a3e4945, 0xf1c2b90e, 0x7a86659f, 0x708e0e25, 0x98142680, 0x844134a2,
	0xf8719cc8, 0xb6f7debc, 0xe92f7dac, 0xd5c522c1, 0x423a7bef, 0xa5b434cc, 0x46990e1a, 0x8c15cb57,
	0x9a990ce8, 0xdb8e7c2a, 0x956df3cf, 0x4994cee5, 0xd948dee1, 0x90076acb, 0xd698b8e4, 0xf10f5ce6,
	0x48e1a44f, 0xf167351b, 0xef4f81d9, 0xf1e16203, 0x698cf6b3, 0x1c074ede, 0x4e427230, 0x008a3472,
	0x868eb970, 0x65b2a5a0, 0x11d11943, 0x6dd567df, 0xe4f20e48, 0x0250c675, 0x49530c7a, 0x33575a94,
	0xd8b36456, 0x3306370a, 0x4906b2d9, 0x74e67397, 0xe80d157d, 0x1ef095ac, 0x84e7624e, 0x7d7c5539,
	0x0cbad454, 0x903f96cc, 0x3e22d05f, 0xe1094b2b, 0xc5e5acbd, 0x7e34a404, 0xbc3e7a9e, 0x1edde628,
	0xe10e53a4, 0x44220539, 0x9421c81b, 0x097d2fca, 0x3c030888, 0xff56e621, 0x51c82ae8, 0xc63514e2,
	0xf185b076, 0xb6e125d3, 0xd93a933e, 0xe0ffc490, 0x15d4dc66, 0x4553320a, 0x415e13e3, 0xe7647c32,
	0x74a30023, 0x804a2470, 0x5c4c8452, 0x5412e411, 0x1a88cb79, 0x7f1abbca, 0x241e109b, 0x27ad703d,
	0xbcf809e8, 0x056fb64a, 0x87777cb9, 0x74ed71e9, 0x80d7aca1, 0xdd357600, 0x0d5cb0ba, 0xf23c1eff,
	0x4d9b07ce, 0x8138fe9f, 0x43816caa, 0xac976fa0, 0x6d0aad31, 0x2d3ebd87, 0xab4a38c0, 0x661b93c9,
	0x983586f8, 0x35b8c32d, 0x9673cda3, 0x173c9240, 0x2beecfba, 0xb1272076, 0xf01096a2, 0xba505fc0,
	0x84a8e594, 0x9b5f1ab9, 0x7908d11d, 0x06435188, 0xe23e9191, 0x31999b77, 0x5c183b8c, 0x365b5138,
	0xd3f39fc6, 0xa16af7a3, 0x0c43e5ec, 0x6f35eff3, 0x8bb73456, 0xca859bc8, 0x466841f6, 0x84827d7d,
	0xae9aa58b, 0xbf5cab5e, 0x6cd8b6e5, 0x3a815707, 0x1c5659d7, 0x3af69e41, 0xcee7911e, 0xa44da0fc,
	0x1a173275, 0x77646779, 0x8aec6d3c, 0xee363db9, 0x19a02659, 0xb00a156c, 0xa65a6bdf, 0x8f1e37af,
	0x7495981a, 0x3541c1f1, 0xa2830e8e, 0xa9074bc7, 0x4f8ef4f8, 0xb3263270, 0xd8691044, 0xb65c43f4,
	0xfa794045, 0x9c40a6dd, 0x9bf31090, 0xc5cce060, 0x61d95c80, 0x03664d24, 0x9297a0e5, 0xb7ed47a0,
	0xfc304dac, 0x45335aae, 0xe2b73e3d, 0xab630c25, 0x961ee396, 0x07ecd2a0, 0x2aab13fc, 0x52424556,
	0x47f98c62, 0xb8cb1c58, 0xb34e4ef8, 0x28bf05b0, 0xc9255734, 0x1bbf3c75, 0x7a0dafcd, 0x31796ed7,
	0x88d39046, 0xa1be884b, 0x664dd210, 0x5df83ef7, 0x1ef88f64, 0xed95152e, 0xa92ea476, 0xc9ab0e66,
	0xa494d0f5, 0xefc799b0, 0x82c36ec8, 0x0c5931e5, 0x66d51e37, 0x67600b7e, 0xa7f0f759, 0x9a6af154,
	0x4c427df4, 0x7c637d4a, 0x6a8ca14f, 0x2a02fdbd, 0xc3198b87, 0xbf4b44d3, 0x2df8a85b, 0x26895062,
	0x9c27d220, 0xaa1fc331, 0x1d408bad, 0x8a909b57, 0xa6bcc2ea, 0xe2d22eda, 0x462e969e, 0x0b5e80e0,
	0xb31f4561, 0x2dda5fb8, 0xa380f96e, 0x29018038, 0x39d71bdb, 0x8f2ec72d, 0xaea2d5c8, 0x776e5765,
	0x0dd79d24, 0x301f21bd, 0x51359e89, 0xbe7d309b, 0x15a5c92c, 0x3c83f2ec, 0x191423e3, 0x3069a7b7,
	0x9777faf8, 0x6d31136c, 0xa4ca2c82, 0xca1999cf, 0xdd20aebf, 0xd6127244, 0x930d7349, 0x91edf29b,
	0xd86e2dc4, 0xa702c6cf, 0x04b07d62, 0x689b256c, 0x8ae2cd97, 0xb958c3df, 0x854d1a8e, 0xe585f980,
	0x0c0f4f9a, 0x5a73d1e4, 0x29a779a3, 0x14fc27aa, 0x912cda6e, 0x4642f49e, 0x02f62636, 0x002020ee,
	0x8381bcf0, 0x37e3391f, 0x48dede9f, 0xf2a39439, 0x84ba714b, 0x98fdf442, 0xe8c14878, 0xf80b3b7f,
}
