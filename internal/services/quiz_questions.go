package services

import "wanderpersona/internal/models/response_models"

// 성향 분석 질문 은행. 카테고리별 id 범위:
//   여행 철학 1-8, 환경 선호 9-20, 문화 관심 21-30, 활동 성향 31-42, 개인 특성 43-50
const (
	CategoryPhilosophy  = "philosophy"
	CategoryEnvironment = "environment"
	CategoryCulture     = "culture"
	CategoryActivity    = "activity"
	CategoryPersonality = "personality"
)

type categoryRange struct {
	Name  string
	Start int
	End   int
}

var categoryRanges = []categoryRange{
	{CategoryPhilosophy, 1, 8},
	{CategoryEnvironment, 9, 20},
	{CategoryCulture, 21, 30},
	{CategoryActivity, 31, 42},
	{CategoryPersonality, 43, 50},
}

var allQuizQuestions = []response_models.QuizQuestion{
	{ID: 1, Category: CategoryPhilosophy, Question: "여행에서 가장 중요하게 생각하는 가치는?", Options: []string{"완전한 휴식과 스트레스 해소", "새로운 문화와 사람들과의 교류", "자신의 한계를 시험하는 모험", "럭셔리하고 독특한 경험"}},
	{ID: 2, Category: CategoryPhilosophy, Question: "이상적인 여행 기간은?", Options: []string{"2-3일의 짧은 여행", "일주일 정도의 여유로운 일정", "2-3주의 깊이 있는 탐험", "한 달 이상의 장기 체류"}},
	{ID: 3, Category: CategoryPhilosophy, Question: "여행지 선택 시 가장 중요한 기준은?", Options: []string{"편리한 교통과 접근성", "독특한 자연 경관", "풍부한 역사와 문화", "현지 고유의 체험 활동"}},
	{ID: 4, Category: CategoryPhilosophy, Question: "함께 여행하고 싶은 동반자는?", Options: []string{"혼자만의 자유로운 여행", "가족과 함께하는 따뜻한 시간", "연인과의 낭만적인 순간", "친구들과의 활기찬 모험"}},
	{ID: 5, Category: CategoryPhilosophy, Question: "여행 계획을 세우는 스타일은?", Options: []string{"세부 일정까지 철저히 계획", "큰 틀만 정하고 현지에서 유연하게", "즉흥적으로 자유롭게", "전문 가이드나 현지인에게 맡김"}},
	{ID: 6, Category: CategoryPhilosophy, Question: "여행에서 가장 기억에 남는 순간은?", Options: []string{"조용한 휴식과 여유", "현지인과의 진솔한 교류", "예기치 않은 놀라운 발견", "독특하고 특별한 경험"}},
	{ID: 7, Category: CategoryPhilosophy, Question: "여행지에서 하루를 보내는 방식은?", Options: []string{"늦게 일어나 여유롭게 시작", "아침부터 활동적으로 탐험", "오전에 활동, 오후에 휴식", "밤늦게까지 활기찬 활동"}},
	{ID: 8, Category: CategoryPhilosophy, Question: "여행의 성공을 판단하는 기준은?", Options: []string{"몸과 마음의 완전한 재충전", "새로운 배움과 경험의 풍부함", "계획한 일정의 완벽한 실행", "기대 이상의 특별한 만족감"}},

	{ID: 9, Category: CategoryEnvironment, Question: "가장 마음이 편안해지는 자연 환경은?", Options: []string{"파도 소리가 들리는 해변", "새소리가 울리는 숲속", "드넓은 초원과 평야", "고요한 호수나 강변"}},
	{ID: 10, Category: CategoryEnvironment, Question: "선호하는 기후는 어떤 스타일인가요?", Options: []string{"따뜻하고 햇살 가득한 열대 기후", "시원하고 맑은 온대 기후", "건조하고 뜨거운 사막 기후", "서늘하고 청량한 고산 기후"}},
	{ID: 11, Category: CategoryEnvironment, Question: "물과 관련된 활동 중 가장 끌리는 것은?", Options: []string{"바다에서 스노클링이나 다이빙", "강에서 래프팅이나 서핑", "호수에서 카약이나 패들보드", "온천에서 편안한 휴식"}},
	{ID: 12, Category: CategoryEnvironment, Question: "산에서의 활동으로 가장 매력적인 것은?", Options: []string{"정상까지 도전하는 하이킹", "케이블카로 즐기는 산 정상 뷰", "산속 마을에서의 현지 체험", "산에서 캠핑과 별 관측"}},
	{ID: 13, Category: CategoryEnvironment, Question: "탐험해보고 싶은 독특한 지형은?", Options: []string{"광활한 사막과 모래 언덕", "신비로운 동굴과 지하 세계", "울창한 열대 우림", "눈 덮인 빙하와 극지방"}},
	{ID: 14, Category: CategoryEnvironment, Question: "섬 여행에서 가장 중요한 요소는?", Options: []string{"맑고 투명한 바다", "조용하고 한적한 분위기", "다양한 해양 스포츠", "섬 고유의 문화와 요리"}},
	{ID: 15, Category: CategoryEnvironment, Question: "야생동물과의 만남에서 기대하는 것은?", Options: []string{"안전하게 관찰하며 사진 촬영", "동물의 생태와 자연 학습", "직접 교감하며 만지는 체험", "희귀 동물을 발견하는 스릴"}},
	{ID: 16, Category: CategoryEnvironment, Question: "극한 환경에 대한 당신의 태도는?", Options: []string{"도전해보고 싶은 흥미로운 경험", "안전이 보장된다면 시도 가능", "다큐멘터리로 보는 것만으로 충분", "위험한 환경은 피하고 싶음"}},
	{ID: 17, Category: CategoryEnvironment, Question: "일출이나 일몰을 감상할 때 선호하는 장소는?", Options: []string{"바다 위 수평선에서의 일출/일몰", "산 정상에서의 장엄한 풍경", "사막에서의 붉은 노을", "도시 스카이라인과 어우러진 석양"}},
	{ID: 18, Category: CategoryEnvironment, Question: "자연재해나 위험에 대한 태도는?", Options: []string{"철저한 안전 장치가 필요", "기본적인 준비로 충분", "모험의 일부로 받아들임", "위험 지역은 여행에서 제외"}},
	{ID: 19, Category: CategoryEnvironment, Question: "계절감을 느끼는 여행의 선호도는?", Options: []string{"따뜻한 여름 기후", "사계절이 뚜렷한 지역", "눈 덮인 겨울 풍경", "봄꽃이나 가을 단풍"}},
	{ID: 20, Category: CategoryEnvironment, Question: "자연 속 숙박 스타일은?", Options: []string{"텐트로 즐기는 야생 캠핑", "글램핑으로 자연과 편안함 모두", "에코 리조트에서 친환경 휴식", "자연은 즐기되 숙소는 호텔"}},

	{ID: 21, Category: CategoryCulture, Question: "역사적 장소 방문 시 가장 관심 있는 부분은?", Options: []string{"고대 건축의 웅장함과 기술", "과거 사람들의 생활과 이야기", "중요 역사적 사건의 현장", "유물과 유적의 신비로운 분위기"}},
	{ID: 22, Category: CategoryCulture, Question: "현지 문화 체험에서 가장 기대하는 것은?", Options: []string{"전통 공예나 의상 체험", "현지 가정에서의 식사", "전통 춤이나 음악 배우기", "현지 축제나 의식 참여"}},
	{ID: 23, Category: CategoryCulture, Question: "박물관이나 미술관에서의 관람 스타일은?", Options: []string{"가이드 투어로 상세히 탐구", "흥미로운 전시만 선택적으로", "전체를 훑으며 분위기 즐기기", "체험 프로그램이나 특별전 위주"}},
	{ID: 24, Category: CategoryCulture, Question: "현지 언어 소통에 대한 접근 방식은?", Options: []string{"여행 전 기본 회화 학습", "현지에서 간단히 배우기", "앱이나 몸짓으로 소통", "영어나 한국어로 가능한 곳만"}},
	{ID: 25, Category: CategoryCulture, Question: "종교적 장소 방문 시 태도는?", Options: []string{"예의를 갖추며 경건히 관람", "건축과 예술적 가치에 집중", "현지인의 신앙을 관찰", "관광지로만 인식"}},
	{ID: 26, Category: CategoryCulture, Question: "현지인과의 교류에서 원하는 것은?", Options: []string{"문화에 대한 깊이 있는 대화", "일상적인 가벼운 만남", "현지 정보와 추천 장소", "간단한 인사나 사진 촬영"}},
	{ID: 27, Category: CategoryCulture, Question: "전통 시장 방문의 주요 목적은?", Options: []string{"현지인의 생활 모습 관찰", "특산품과 음식 맛보기", "기념품 구매", "활기찬 시장 분위기 즐기기"}},
	{ID: 28, Category: CategoryCulture, Question: "축제 참여 방식은?", Options: []string{"직접 참여하며 즐기기", "관람하며 분위기 느끼기", "사진과 영상으로 기록", "축제의 역사와 의미 탐구"}},
	{ID: 29, Category: CategoryCulture, Question: "예술 공연 감상 시 선호하는 스타일은?", Options: []string{"전통 예술과 민속 공연", "현대적이고 실험적인 예술", "클래식 음악이나 오페라", "대중적이고 접근성 높은 공연"}},
	{ID: 30, Category: CategoryCulture, Question: "문화적 차이에 대한 반응은?", Options: []string{"배울 점이 많다고 느낌", "당황하지만 점차 적응", "차이를 인정하며 거리 유지", "불편함을 느끼고 피하고 싶음"}},

	{ID: 31, Category: CategoryActivity, Question: "선호하는 신체 활동 강도는?", Options: []string{"격렬한 스포츠와 모험", "적당한 운동량의 활동", "산책이나 가벼운 걷기", "최소한의 움직임과 휴식"}},
	{ID: 32, Category: CategoryActivity, Question: "음식 체험에서 가장 중요하게 생각하는 것은?", Options: []string{"현지 고유의 독특한 맛", "신선하고 건강한 재료", "익숙하고 입맛에 맞는 음식", "시각적으로 아름다운 음식"}},
	{ID: 33, Category: CategoryActivity, Question: "새로운 음식에 대한 도전 의지는?", Options: []string{"모든 음식을 시도해보고 싶음", "추천받은 음식만 도전", "익숙해 보이는 음식만", "친숙한 음식 위주로"}},
	{ID: 34, Category: CategoryActivity, Question: "기념품 구매 시 선호는?", Options: []string{"현지 특산품", "실용적인 아이템", "추억을 떠올리는 장식품", "구매보다 경험 우선"}},
	{ID: 35, Category: CategoryActivity, Question: "여행 중 사진 촬영 스타일은?", Options: []string{"모든 순간을 꼼꼼히 기록", "특별한 순간만 촬영", "예술적인 풍경 사진 위주", "사진보다 직접 느끼는 것 우선"}},
	{ID: 36, Category: CategoryActivity, Question: "교통수단 선택 시 우선순위는?", Options: []string{"빠르고 편리한 이동", "경치를 즐기는 여유로운 이동", "현지 문화를 느낄 수 있는 수단", "독특하고 기억에 남는 이동"}},
	{ID: 37, Category: CategoryActivity, Question: "숙소 선택 시 가장 중요한 요소는?", Options: []string{"깨끗하고 편안한 환경", "현지 문화를 반영한 분위기", "아름다운 풍경과 위치", "독특한 컨셉의 숙소"}},
	{ID: 38, Category: CategoryActivity, Question: "여행 중 휴식 시간을 보내는 방식은?", Options: []string{"숙소에서 완전히 휴식", "카페에서 여유롭게 시간 보내기", "주변을 산책하며 탐방", "다음 일정 계획하며 준비"}},
	{ID: 39, Category: CategoryActivity, Question: "날씨가 좋지 않을 때의 대안 활동은?", Options: []string{"박물관이나 실내 관광지 방문", "카페나 레스토랑에서 여유", "쇼핑몰이나 시장 탐방", "숙소에서 휴식하며 대기"}},
	{ID: 40, Category: CategoryActivity, Question: "여행 중 건강 관리에 대한 태도는?", Options: []string{"건강한 식단과 운동 유지", "적당한 활동으로 컨디션 유지", "여행 중엔 자유롭게 즐김", "즐거움과 경험이 건강보다 우선"}},
	{ID: 41, Category: CategoryActivity, Question: "예상치 못한 상황에서의 대처 방식은?", Options: []string{"침착하게 해결책 찾기", "재미있는 에피소드로 받아들임", "대안 계획 실행", "현지인이나 전문가에게 도움 요청"}},
	{ID: 42, Category: CategoryActivity, Question: "여행에서 학습과 성장에 대한 기대는?", Options: []string{"새로운 지식과 경험으로 성장", "자연스럽게 배우면 좋지만 강요 NO", "휴식이 우선, 학습은 부담", "흥미로운 것만 선택적으로 학습"}},

	{ID: 43, Category: CategoryPersonality, Question: "평소 휴일을 보내는 방식은?", Options: []string{"집에서 휴식하며 재충전", "가까운 곳으로 나들이", "친구들과 활동적으로", "새로운 장소 탐험"}},
	{ID: 44, Category: CategoryPersonality, Question: "스트레스 해소에 가장 효과적인 방법은?", Options: []string{"충분한 휴식과 수면", "운동이나 신체 활동", "친구와의 대화와 만남", "취미나 새로운 도전"}},
	{ID: 45, Category: CategoryPersonality, Question: "낯선 사람들과의 만남에 대한 태도는?", Options: []string{"적극적으로 친해지기", "상대가 먼저 다가오면 자연스럽게", "필요 시 최소한의 대화", "혼자 있는 시간 선호"}},
	{ID: 46, Category: CategoryPersonality, Question: "새로운 환경에 대한 적응력은?", Options: []string{"변화를 즐기며 빠르게 적응", "조금 어색하지만 점차 적응", "적응에 시간이 필요", "익숙한 환경을 선호"}},
	{ID: 47, Category: CategoryPersonality, Question: "위험하거나 모험적인 활동에 대한 태도는?", Options: []string{"스릴을 즐기는 모험가", "안전이 보장되면 도전", "검증된 활동만 시도", "안전한 활동만 선호"}},
	{ID: 48, Category: CategoryPersonality, Question: "시간 관리와 계획에 대한 성향은?", Options: []string{"철저한 계획과 준비", "큰 틀만 계획, 세부는 유연히", "최소한의 준비로 즉흥적", "계획 자체를 싫어함"}},
	{ID: 49, Category: CategoryPersonality, Question: "경험과 물질적 소유 중 어느 것을 더 중시하나요?", Options: []string{"경험이 가장 소중한 자산", "좋은 경험을 위해 투자 가능", "경험과 실용성을 모두 고려", "실질적 가치를 더 중시"}},
	{ID: 50, Category: CategoryPersonality, Question: "여행을 통해 궁극적으로 얻고 싶은 것은?", Options: []string{"스트레스 해소와 완전한 휴식", "새로운 깨달음과 영감", "평생 기억될 독특한 경험", "소중한 사람들과의 추억"}},
}
