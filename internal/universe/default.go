package universe

// Default returns the built-in robot-sector universe, used when no
// universe file is configured
func Default() *Universe {
	return &Universe{
		Sector: "robot",
		Stocks: []Stock{
			// 산업용 로봇
			{Ticker: "454910", Name: "로보티즈", Category: "서비스로봇", Market: "KOSDAQ"},
			{Ticker: "090710", Name: "휴림로봇", Category: "산업용로봇", Market: "KOSDAQ"},
			{Ticker: "090460", Name: "비에이치", Category: "부품", Market: "KOSDAQ"},

			// 로봇 자동화
			{Ticker: "108860", Name: "셀바스AI", Category: "AI로봇", Market: "KOSDAQ"},
			{Ticker: "039030", Name: "이오테크닉스", Category: "레이저장비", Market: "KOSDAQ"},
			{Ticker: "950140", Name: "잉글우드랩", Category: "로봇SW", Market: "KOSDAQ"},

			// 대기업 로봇 관련
			{Ticker: "005930", Name: "삼성전자", Category: "종합반도체", Market: "KOSPI"},
			{Ticker: "000660", Name: "SK하이닉스", Category: "메모리반도체", Market: "KOSPI"},
			{Ticker: "012450", Name: "한화에어로스페이스", Category: "방산/로봇", Market: "KOSPI"},
			{Ticker: "042660", Name: "한화오션", Category: "조선/로봇", Market: "KOSPI"},
			{Ticker: "272210", Name: "한화시스템", Category: "방산IT", Market: "KOSPI"},

			// 협동로봇/서비스로봇
			{Ticker: "056190", Name: "에스에프에이", Category: "물류자동화", Market: "KOSPI"},
			{Ticker: "138580", Name: "비즈니스온", Category: "전자문서", Market: "KOSDAQ"},
			{Ticker: "039440", Name: "에스티아이", Category: "반도체장비", Market: "KOSDAQ"},
			{Ticker: "317830", Name: "에스피시스템스", Category: "디스플레이장비", Market: "KOSDAQ"},

			// 모터/감속기 (로봇 핵심부품)
			{Ticker: "060150", Name: "인텍플러스", Category: "검사장비", Market: "KOSDAQ"},
			{Ticker: "214150", Name: "클래시스", Category: "의료기기", Market: "KOSDAQ"},
			{Ticker: "140860", Name: "파크시스템스", Category: "나노장비", Market: "KOSDAQ"},
			{Ticker: "352820", Name: "하이브", Category: "엔터", Market: "KOSPI"},

			// 두산 그룹 로봇
			{Ticker: "336260", Name: "두산로보틱스", Category: "협동로봇", Market: "KOSPI"},
			{Ticker: "042670", Name: "두산인프라코어", Category: "건설기계", Market: "KOSPI"},

			// 현대 그룹 로봇
			{Ticker: "005380", Name: "현대차", Category: "완성차/로봇", Market: "KOSPI"},
			{Ticker: "000270", Name: "기아", Category: "완성차", Market: "KOSPI"},
			{Ticker: "267260", Name: "현대일렉트릭", Category: "전력기기", Market: "KOSPI"},

			// 레인보우로보틱스 (보스턴다이나믹스 협력)
			{Ticker: "277810", Name: "레인보우로보틱스", Category: "휴머노이드", Market: "KOSDAQ"},
		},
	}
}
