package fiat

import "github.com/SscSPs/wallet_denominations/internal/core/domain"

// builtinCurrencies mirrors the currency-symbol reference table shipped with the app.
// BTC and ETH are in it too, which is why FixFiatCurrencyCode special-cases them.
var builtinCurrencies = []domain.Currency{
	{CurrencyCode: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
	{CurrencyCode: "AFN", Symbol: "؋", Name: "Afghani"},
	{CurrencyCode: "ALL", Symbol: "L", Name: "Lek"},
	{CurrencyCode: "AMD", Symbol: "֏", Name: "Armenian Dram"},
	{CurrencyCode: "ANG", Symbol: "ƒ", Name: "Netherlands Antillean Guilder"},
	{CurrencyCode: "AOA", Symbol: "Kz", Name: "Kwanza"},
	{CurrencyCode: "ARS", Symbol: "$", Name: "Argentine Peso"},
	{CurrencyCode: "AUD", Symbol: "$", Name: "Australian Dollar"},
	{CurrencyCode: "AWG", Symbol: "ƒ", Name: "Aruban Florin"},
	{CurrencyCode: "AZN", Symbol: "₼", Name: "Azerbaijan Manat"},
	{CurrencyCode: "BAM", Symbol: "KM", Name: "Convertible Mark"},
	{CurrencyCode: "BBD", Symbol: "$", Name: "Barbados Dollar"},
	{CurrencyCode: "BDT", Symbol: "৳", Name: "Taka"},
	{CurrencyCode: "BGN", Symbol: "лв", Name: "Bulgarian Lev"},
	{CurrencyCode: "BHD", Symbol: ".د.ب", Name: "Bahraini Dinar"},
	{CurrencyCode: "BIF", Symbol: "FBu", Name: "Burundi Franc"},
	{CurrencyCode: "BMD", Symbol: "$", Name: "Bermudian Dollar"},
	{CurrencyCode: "BND", Symbol: "$", Name: "Brunei Dollar"},
	{CurrencyCode: "BOB", Symbol: "$b", Name: "Boliviano"},
	{CurrencyCode: "BRL", Symbol: "R$", Name: "Brazilian Real"},
	{CurrencyCode: "BSD", Symbol: "$", Name: "Bahamian Dollar"},
	{CurrencyCode: "BTC", Symbol: "₿", Name: "Bitcoin"},
	{CurrencyCode: "BTN", Symbol: "Nu.", Name: "Ngultrum"},
	{CurrencyCode: "BWP", Symbol: "P", Name: "Pula"},
	{CurrencyCode: "BYN", Symbol: "Br", Name: "Belarusian Ruble"},
	{CurrencyCode: "BZD", Symbol: "BZ$", Name: "Belize Dollar"},
	{CurrencyCode: "CAD", Symbol: "$", Name: "Canadian Dollar"},
	{CurrencyCode: "CDF", Symbol: "FC", Name: "Congolese Franc"},
	{CurrencyCode: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	{CurrencyCode: "CLP", Symbol: "$", Name: "Chilean Peso"},
	{CurrencyCode: "CNY", Symbol: "¥", Name: "Yuan Renminbi"},
	{CurrencyCode: "COP", Symbol: "$", Name: "Colombian Peso"},
	{CurrencyCode: "CRC", Symbol: "₡", Name: "Costa Rican Colon"},
	{CurrencyCode: "CUP", Symbol: "₱", Name: "Cuban Peso"},
	{CurrencyCode: "CVE", Symbol: "$", Name: "Cabo Verde Escudo"},
	{CurrencyCode: "CZK", Symbol: "Kč", Name: "Czech Koruna"},
	{CurrencyCode: "DJF", Symbol: "Fdj", Name: "Djibouti Franc"},
	{CurrencyCode: "DKK", Symbol: "kr", Name: "Danish Krone"},
	{CurrencyCode: "DOP", Symbol: "RD$", Name: "Dominican Peso"},
	{CurrencyCode: "DZD", Symbol: "دج", Name: "Algerian Dinar"},
	{CurrencyCode: "EGP", Symbol: "£", Name: "Egyptian Pound"},
	{CurrencyCode: "ERN", Symbol: "Nfk", Name: "Nakfa"},
	{CurrencyCode: "ETB", Symbol: "Br", Name: "Ethiopian Birr"},
	{CurrencyCode: "ETH", Symbol: "Ξ", Name: "Ether"},
	{CurrencyCode: "EUR", Symbol: "€", Name: "Euro"},
	{CurrencyCode: "FJD", Symbol: "$", Name: "Fiji Dollar"},
	{CurrencyCode: "FKP", Symbol: "£", Name: "Falkland Islands Pound"},
	{CurrencyCode: "GBP", Symbol: "£", Name: "Pound Sterling"},
	{CurrencyCode: "GEL", Symbol: "₾", Name: "Lari"},
	{CurrencyCode: "GHS", Symbol: "GH₵", Name: "Ghana Cedi"},
	{CurrencyCode: "GIP", Symbol: "£", Name: "Gibraltar Pound"},
	{CurrencyCode: "GMD", Symbol: "D", Name: "Dalasi"},
	{CurrencyCode: "GNF", Symbol: "FG", Name: "Guinean Franc"},
	{CurrencyCode: "GTQ", Symbol: "Q", Name: "Quetzal"},
	{CurrencyCode: "GYD", Symbol: "$", Name: "Guyana Dollar"},
	{CurrencyCode: "HKD", Symbol: "$", Name: "Hong Kong Dollar"},
	{CurrencyCode: "HNL", Symbol: "L", Name: "Lempira"},
	{CurrencyCode: "HRK", Symbol: "kn", Name: "Kuna"},
	{CurrencyCode: "HTG", Symbol: "G", Name: "Gourde"},
	{CurrencyCode: "HUF", Symbol: "Ft", Name: "Forint"},
	{CurrencyCode: "IDR", Symbol: "Rp", Name: "Rupiah"},
	{CurrencyCode: "ILS", Symbol: "₪", Name: "New Israeli Sheqel"},
	{CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{CurrencyCode: "IQD", Symbol: "ع.د", Name: "Iraqi Dinar"},
	{CurrencyCode: "IRR", Symbol: "﷼", Name: "Iranian Rial"},
	{CurrencyCode: "ISK", Symbol: "kr", Name: "Iceland Krona"},
	{CurrencyCode: "JMD", Symbol: "J$", Name: "Jamaican Dollar"},
	{CurrencyCode: "JOD", Symbol: "JD", Name: "Jordanian Dinar"},
	{CurrencyCode: "JPY", Symbol: "¥", Name: "Yen"},
	{CurrencyCode: "KES", Symbol: "KSh", Name: "Kenyan Shilling"},
	{CurrencyCode: "KGS", Symbol: "лв", Name: "Som"},
	{CurrencyCode: "KHR", Symbol: "៛", Name: "Riel"},
	{CurrencyCode: "KMF", Symbol: "CF", Name: "Comorian Franc"},
	{CurrencyCode: "KPW", Symbol: "₩", Name: "North Korean Won"},
	{CurrencyCode: "KRW", Symbol: "₩", Name: "Won"},
	{CurrencyCode: "KWD", Symbol: "KD", Name: "Kuwaiti Dinar"},
	{CurrencyCode: "KYD", Symbol: "$", Name: "Cayman Islands Dollar"},
	{CurrencyCode: "KZT", Symbol: "₸", Name: "Tenge"},
	{CurrencyCode: "LAK", Symbol: "₭", Name: "Lao Kip"},
	{CurrencyCode: "LBP", Symbol: "£", Name: "Lebanese Pound"},
	{CurrencyCode: "LKR", Symbol: "₨", Name: "Sri Lanka Rupee"},
	{CurrencyCode: "LRD", Symbol: "$", Name: "Liberian Dollar"},
	{CurrencyCode: "LSL", Symbol: "M", Name: "Loti"},
	{CurrencyCode: "LYD", Symbol: "LD", Name: "Libyan Dinar"},
	{CurrencyCode: "MAD", Symbol: "MAD", Name: "Moroccan Dirham"},
	{CurrencyCode: "MDL", Symbol: "lei", Name: "Moldovan Leu"},
	{CurrencyCode: "MGA", Symbol: "Ar", Name: "Malagasy Ariary"},
	{CurrencyCode: "MKD", Symbol: "ден", Name: "Denar"},
	{CurrencyCode: "MMK", Symbol: "K", Name: "Kyat"},
	{CurrencyCode: "MNT", Symbol: "₮", Name: "Tugrik"},
	{CurrencyCode: "MOP", Symbol: "MOP$", Name: "Pataca"},
	{CurrencyCode: "MRU", Symbol: "UM", Name: "Ouguiya"},
	{CurrencyCode: "MUR", Symbol: "₨", Name: "Mauritius Rupee"},
	{CurrencyCode: "MVR", Symbol: "Rf", Name: "Rufiyaa"},
	{CurrencyCode: "MWK", Symbol: "MK", Name: "Malawi Kwacha"},
	{CurrencyCode: "MXN", Symbol: "$", Name: "Mexican Peso"},
	{CurrencyCode: "MYR", Symbol: "RM", Name: "Malaysian Ringgit"},
	{CurrencyCode: "MZN", Symbol: "MT", Name: "Mozambique Metical"},
	{CurrencyCode: "NAD", Symbol: "$", Name: "Namibia Dollar"},
	{CurrencyCode: "NGN", Symbol: "₦", Name: "Naira"},
	{CurrencyCode: "NIO", Symbol: "C$", Name: "Cordoba Oro"},
	{CurrencyCode: "NOK", Symbol: "kr", Name: "Norwegian Krone"},
	{CurrencyCode: "NPR", Symbol: "₨", Name: "Nepalese Rupee"},
	{CurrencyCode: "NZD", Symbol: "$", Name: "New Zealand Dollar"},
	{CurrencyCode: "OMR", Symbol: "﷼", Name: "Rial Omani"},
	{CurrencyCode: "PAB", Symbol: "B/.", Name: "Balboa"},
	{CurrencyCode: "PEN", Symbol: "S/.", Name: "Sol"},
	{CurrencyCode: "PGK", Symbol: "K", Name: "Kina"},
	{CurrencyCode: "PHP", Symbol: "₱", Name: "Philippine Peso"},
	{CurrencyCode: "PKR", Symbol: "₨", Name: "Pakistan Rupee"},
	{CurrencyCode: "PLN", Symbol: "zł", Name: "Zloty"},
	{CurrencyCode: "PYG", Symbol: "Gs", Name: "Guarani"},
	{CurrencyCode: "QAR", Symbol: "﷼", Name: "Qatari Rial"},
	{CurrencyCode: "RON", Symbol: "lei", Name: "Romanian Leu"},
	{CurrencyCode: "RSD", Symbol: "Дин.", Name: "Serbian Dinar"},
	{CurrencyCode: "RUB", Symbol: "₽", Name: "Russian Ruble"},
	{CurrencyCode: "RWF", Symbol: "R₣", Name: "Rwanda Franc"},
	{CurrencyCode: "SAR", Symbol: "﷼", Name: "Saudi Riyal"},
	{CurrencyCode: "SBD", Symbol: "$", Name: "Solomon Islands Dollar"},
	{CurrencyCode: "SCR", Symbol: "₨", Name: "Seychelles Rupee"},
	{CurrencyCode: "SDG", Symbol: "ج.س.", Name: "Sudanese Pound"},
	{CurrencyCode: "SEK", Symbol: "kr", Name: "Swedish Krona"},
	{CurrencyCode: "SGD", Symbol: "$", Name: "Singapore Dollar"},
	{CurrencyCode: "SHP", Symbol: "£", Name: "Saint Helena Pound"},
	{CurrencyCode: "SLL", Symbol: "Le", Name: "Leone"},
	{CurrencyCode: "SOS", Symbol: "S", Name: "Somali Shilling"},
	{CurrencyCode: "SRD", Symbol: "$", Name: "Surinam Dollar"},
	{CurrencyCode: "SSP", Symbol: "£", Name: "South Sudanese Pound"},
	{CurrencyCode: "STN", Symbol: "Db", Name: "Dobra"},
	{CurrencyCode: "SVC", Symbol: "$", Name: "El Salvador Colon"},
	{CurrencyCode: "SYP", Symbol: "£", Name: "Syrian Pound"},
	{CurrencyCode: "SZL", Symbol: "E", Name: "Lilangeni"},
	{CurrencyCode: "THB", Symbol: "฿", Name: "Baht"},
	{CurrencyCode: "TJS", Symbol: "SM", Name: "Somoni"},
	{CurrencyCode: "TMT", Symbol: "T", Name: "Turkmenistan New Manat"},
	{CurrencyCode: "TND", Symbol: "د.ت", Name: "Tunisian Dinar"},
	{CurrencyCode: "TOP", Symbol: "T$", Name: "Pa'anga"},
	{CurrencyCode: "TRY", Symbol: "₺", Name: "Turkish Lira"},
	{CurrencyCode: "TTD", Symbol: "TT$", Name: "Trinidad and Tobago Dollar"},
	{CurrencyCode: "TWD", Symbol: "NT$", Name: "New Taiwan Dollar"},
	{CurrencyCode: "TZS", Symbol: "TSh", Name: "Tanzanian Shilling"},
	{CurrencyCode: "UAH", Symbol: "₴", Name: "Hryvnia"},
	{CurrencyCode: "UGX", Symbol: "USh", Name: "Uganda Shilling"},
	{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar"},
	{CurrencyCode: "UYU", Symbol: "$U", Name: "Peso Uruguayo"},
	{CurrencyCode: "UZS", Symbol: "лв", Name: "Uzbekistan Sum"},
	{CurrencyCode: "VES", Symbol: "Bs.S", Name: "Bolivar Soberano"},
	{CurrencyCode: "VND", Symbol: "₫", Name: "Dong"},
	{CurrencyCode: "VUV", Symbol: "VT", Name: "Vatu"},
	{CurrencyCode: "WST", Symbol: "WS$", Name: "Tala"},
	{CurrencyCode: "XAF", Symbol: "FCFA", Name: "CFA Franc BEAC"},
	{CurrencyCode: "XCD", Symbol: "$", Name: "East Caribbean Dollar"},
	{CurrencyCode: "XOF", Symbol: "CFA", Name: "CFA Franc BCEAO"},
	{CurrencyCode: "XPF", Symbol: "₣", Name: "CFP Franc"},
	{CurrencyCode: "YER", Symbol: "﷼", Name: "Yemeni Rial"},
	{CurrencyCode: "ZAR", Symbol: "R", Name: "Rand"},
	{CurrencyCode: "ZMW", Symbol: "ZK", Name: "Zambian Kwacha"},
	{CurrencyCode: "ZWL", Symbol: "$", Name: "Zimbabwe Dollar"},
}
